package form

import "time"

// ValueField is an input whose current text can be read.
type ValueField interface {
	Value() string
}

// Resetter clears every field of a form.
type Resetter interface {
	Reset()
}

// SubmitControl is the button that triggers a submission.
type SubmitControl interface {
	SetDisabled(disabled bool)
	SetLabel(label string)
}

// MessageContainer renders at most one feedback message at a time.
type MessageContainer interface {
	// Render replaces the whole content of the container with m.
	Render(m Message)
	// FadeOut hides the current message visually without removing it.
	FadeOut()
	Clear()
	ScrollIntoView()
}

// Scalable is the visual wrapper around the name input.
type Scalable interface {
	SetScale(factor float64, transition time.Duration)
}

// Elements are the page parts a Controller binds to. All of them are required.
type Elements struct {
	Form        Resetter
	Name        ValueField
	Submit      SubmitControl
	Messages    MessageContainer
	NameWrapper Scalable
}

func (e Elements) validate() error {
	switch {
	case e.Form == nil:
		return &MissingElementError{Element: "form"}
	case e.Name == nil:
		return &MissingElementError{Element: "name input"}
	case e.Submit == nil:
		return &MissingElementError{Element: "submit button"}
	case e.Messages == nil:
		return &MissingElementError{Element: "message container"}
	case e.NameWrapper == nil:
		return &MissingElementError{Element: "name input wrapper"}
	}
	return nil
}
