package email

import (
	"fmt"

	"stockroom/internal/models"
)

func (s *Service) generateWelcomeText(user *models.User) string {
	return fmt.Sprintf(`Hi %s,

Welcome to Stockroom! Your account is ready.

Log in with your username to get a session token, then start cataloguing
items through the API.

If you did not create this account, you can ignore this email.

The Stockroom team
`, user.Username)
}

func (s *Service) generateWelcomeHTML(user *models.User) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to Stockroom</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Welcome to Stockroom, %s!</h2>
    <p>Your account is ready.</p>
    <p>Log in with your username to get a session token, then start cataloguing items through the API.</p>
    <p style="color: #888; font-size: 13px;">If you did not create this account, you can ignore this email.</p>
</body>
</html>`, user.Username)
}
