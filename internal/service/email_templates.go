package service

import "fmt"

func loginCodeEmailTemplate(code, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s sign-in code", appName)
	body := fmt.Sprintf(`Enter this code to sign in:

%s

The code expires in 10 minutes and can only be used once.

If you didn't request this, ignore this email.

Best,
The %s Team`, code, appName)

	return subject, body
}

func welcomeEmailTemplate(reviewsURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Your account is active.

Start your first weekly review: %s

If you have questions, just reply to this email.

Best,
The %s Team`, reviewsURL, appName)

	return subject, body
}

func accountDeletedEmailTemplate(appName string) (string, string) {
	subject := fmt.Sprintf("Your %s account has been deleted", appName)
	body := fmt.Sprintf(`Your account and all of your weekly reviews have been permanently deleted.

Thanks for giving %s a try. You're welcome back any time.

Best,
The %s Team`, appName, appName)

	return subject, body
}
