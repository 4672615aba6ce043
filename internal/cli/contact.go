package cli

import "context"

// Contact prompts for the contact form and sends it. Name and email default
// to the signed-in account when left empty.
func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Your email", a.out)
	if err != nil {
		return err
	}
	if u := a.session.CurrentUser(); u != nil {
		if name == "" {
			name = u.Name
		}
		if email == "" {
			email = u.Email
		}
	}
	message, err := getMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}

	_, err = a.contact.Submit(ctx, name, email, message)
	return err
}
