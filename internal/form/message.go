package form

import "time"

// Kind selects the style of a feedback message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a feedback text shown in the message container.
type Message struct {
	Text string
	Kind Kind
}

// User-facing texts.
const (
	MsgNameTooShort = "Por favor, digite seu nome completo (mínimo 3 caracteres)."
	MsgAPIFallback  = "Erro ao confirmar presença. Tente novamente."
	MsgConnection   = "Erro de conexão. Verifique sua internet e tente novamente."
	successFormat   = "✓ Presença confirmada com sucesso! Obrigado, %s! 🎉"

	LabelIdle       = "✓ Confirmar Presença"
	LabelSubmitting = "⏳ Confirmando..."
)

// Timings of the transient UI.
const (
	SuccessDisplay  = 5 * time.Second
	FadeDuration    = 300 * time.Millisecond
	FocusScale      = 1.02
	ScaleTransition = 200 * time.Millisecond
)

// MinNameLength is the minimum number of characters of a trimmed name.
const MinNameLength = 3
