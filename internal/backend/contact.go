package backend

import (
	"context"
	"net/http"
)

// SendContact submits a visitor's contact message.
func (c *Client) SendContact(ctx context.Context, form ContactForm) error {
	return c.doJSON(ctx, http.MethodPost, "/contact", form, nil)
}

// ListContacts fetches the contact inbox.
func (c *Client) ListContacts(ctx context.Context) ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := c.doJSON(ctx, http.MethodGet, "/contact", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ReplyContact dispatches an admin reply email through the backend.
func (c *Client) ReplyContact(ctx context.Context, reply ContactReply) error {
	return c.doJSON(ctx, http.MethodPost, "/contact/reply", reply, nil)
}

// DeleteContact removes one message from the inbox.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/contact/"+id, nil, nil)
	if err != nil {
		return err
	}
	return c.decode(ctx, resp, http.MethodDelete, "/contact/"+id, nil)
}
