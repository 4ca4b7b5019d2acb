package notify

import (
	"fmt"

	"github.com/guildnet/board/internal/board/domain"
)

// render produces the subject and plain-text body for a template. Unknown
// templates return an error so typos surface in delivery logs instead of
// sending empty mail.
func render(tpl domain.Template, data map[string]string) (subject, body string, err error) {
	name := data["display_name"]

	switch tpl {
	case domain.TemplateRegistrationConfirmation:
		subject = "Confirm your registration"
		body = fmt.Sprintf("Hi %s,\n\nYour confirmation code is %s.\n\nEnter it to activate your account.\n",
			name, data["code"])

	case domain.TemplateNewResponse:
		subject = fmt.Sprintf("New response on %q awaiting review", data["title"])
		body = fmt.Sprintf("Hi %s,\n\n%s responded to your post %q. The response is waiting for your approval.\n",
			name, data["author"], data["title"])

	case domain.TemplateResponseApproved:
		subject = fmt.Sprintf("Your response on %q was approved", data["title"])
		body = fmt.Sprintf("Hi %s,\n\nYour response on %q has been approved and is now visible.\n",
			name, data["title"])

	case domain.TemplateNewPost:
		subject = fmt.Sprintf("New post in %s: %s", data["category"], data["title"])
		body = fmt.Sprintf("Hi %s,\n\nA new post %q was published in %s, a category you subscribe to.\n",
			name, data["title"], data["category"])

	case domain.TemplateSubscribed:
		subject = fmt.Sprintf("Subscribed to %s", data["category"])
		body = fmt.Sprintf("Hi %s,\n\nYou are now subscribed to %s and will be notified of new posts.\n",
			name, data["category"])

	case domain.TemplateUnsubscribed:
		subject = fmt.Sprintf("Unsubscribed from %s", data["category"])
		body = fmt.Sprintf("Hi %s,\n\nYou will no longer receive notifications for %s.\n",
			name, data["category"])

	default:
		return "", "", fmt.Errorf("unknown notification template %q", tpl)
	}

	return subject, body, nil
}
