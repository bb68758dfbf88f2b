package admin

import (
	"context"
	"strings"

	"marocstar-shop/internal/backend"
)

// replySubject is the fixed subject line on admin replies.
const replySubject = "Réponse de l'administration"

type ContactsAPI interface {
	ListContacts(ctx context.Context) ([]backend.ContactMessage, error)
	ReplyContact(ctx context.Context, reply backend.ContactReply) error
	DeleteContact(ctx context.Context, id string) error
}

// Inbox is the admin contact-messages screen.
type Inbox struct {
	api ContactsAPI
}

func NewInbox(api ContactsAPI) *Inbox {
	return &Inbox{api: api}
}

func (i *Inbox) List(ctx context.Context) ([]backend.ContactMessage, error) {
	return i.api.ListContacts(ctx)
}

// Reply dispatches an answer to the sender through the backend's mailer.
func (i *Inbox) Reply(ctx context.Context, email, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyReply
	}
	return i.api.ReplyContact(ctx, backend.ContactReply{
		Email:   email,
		Subject: replySubject,
		Message: message,
	})
}

// Delete removes a message and returns the re-fetched inbox.
func (i *Inbox) Delete(ctx context.Context, id string) ([]backend.ContactMessage, error) {
	if err := i.api.DeleteContact(ctx, id); err != nil {
		return nil, err
	}
	return i.api.ListContacts(ctx)
}
