package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"newsroom/models"
	"newsroom/utils"
)

// Prompter is the interactive side of the add-post wizard.
type Prompter interface {
	Title(title string)
	Text(lines ...string)
	// Ask repeats the question until validate accepts the answer or
	// returns an error that is not a validation error.
	Ask(question string, validate func(string) (string, error)) (string, error)
}

// AddPostWorkflow creates News posts: collect, validate, check the title is
// free, persist.
type AddPostWorkflow struct {
	store     NewsStore
	validator *utils.Validator
}

func NewAddPostWorkflow(store NewsStore, validator *utils.Validator) *AddPostWorkflow {
	return &AddPostWorkflow{store: store, validator: validator}
}

// Interact asks for every field missing from in. Supplied fields are echoed
// back and left untouched.
func (w *AddPostWorkflow) Interact(p Prompter, in *models.AddPostInput) error {
	if in.Title != nil && in.Description != nil && in.Date != nil {
		return nil
	}

	p.Title("Add Post Command Interactive Wizard")
	p.Text(
		"If you prefer to not use this interactive wizard, provide the",
		"arguments required by this command as follows:",
		"",
		" $ add-post title description 2018-11-21",
		"",
		"Now we'll ask you for the value of all the missing command arguments.",
	)

	fields := []struct {
		label    string
		value    **string
		validate func(string) (string, error)
		echo     func(string) string
	}{
		{"Title", &in.Title, w.validator.ValidateTitle, mask},
		{"Description", &in.Description, w.validator.ValidateDescription, nil},
		{"Date (Y-m-d)", &in.Date, w.validator.ValidateDate, nil},
	}

	for _, f := range fields {
		if *f.value != nil {
			shown := **f.value
			if f.echo != nil {
				shown = f.echo(shown)
			}
			p.Text(" > " + f.label + ": " + shown)
			continue
		}

		answer, err := p.Ask(f.label, f.validate)
		if err != nil {
			return err
		}
		*f.value = &answer
	}
	return nil
}

// Execute validates in and persists a new post. Nothing is written unless
// every check passes.
func (w *AddPostWorkflow) Execute(ctx context.Context, in models.AddPostInput) (*models.News, error) {
	title, description, date := deref(in.Title), deref(in.Description), deref(in.Date)

	if err := w.ValidatePostData(ctx, title, description, date); err != nil {
		return nil, err
	}

	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, models.NewInvalidFormatError("Is invalid date format. (Y-m-d)")
	}

	news := &models.News{
		Name:        title,
		Description: description,
		Date:        day,
	}
	if err := w.store.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

// ValidatePostData re-runs every field rule, then rejects a title that is
// already taken.
func (w *AddPostWorkflow) ValidatePostData(ctx context.Context, title, description, date string) error {
	if _, err := w.validator.ValidateTitle(title); err != nil {
		return err
	}
	if _, err := w.validator.ValidateDescription(description); err != nil {
		return err
	}
	if _, err := w.validator.ValidateDate(date); err != nil {
		return err
	}

	existing, err := w.store.FindByName(ctx, title)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewDuplicateTitleError(title)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mask(s string) string {
	return strings.Repeat("*", utf8.RuneCountInString(s))
}
