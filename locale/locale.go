// Package locale supplies the localized strings rowkit components use for
// accessible labels and chrome text. A default English bundle is compiled
// in; hosts may load additional languages from TOML message files and pick
// a locale per localizer.
package locale

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs used by the components.
const (
	msgSelectRow     = "rowkit.row.select"
	msgDeselectRow   = "rowkit.row.deselect"
	msgCheckbox      = "rowkit.row.checkbox"
	msgActionsToggle = "rowkit.row.actions_toggle"
	msgSelectAll     = "rowkit.list.select_all"
	msgSelectedCount = "rowkit.list.selected_count"
	msgLoading       = "rowkit.frame.loading"
	msgSave          = "rowkit.frame.save"
	msgDiscard       = "rowkit.frame.discard"
)

// NewBundle returns a bundle preloaded with the built-in English messages.
// TOML message files can be layered on top with LoadMessageFile.
func NewBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.AddMessages(language.English,
		&i18n.Message{ID: msgSelectRow, Other: "Select {{.Label}}"},
		&i18n.Message{ID: msgDeselectRow, Other: "Deselect {{.Label}}"},
		&i18n.Message{ID: msgCheckbox, Other: "checkbox"},
		&i18n.Message{ID: msgActionsToggle, Other: "More actions"},
		&i18n.Message{ID: msgSelectAll, Other: "Select all"},
		&i18n.Message{ID: msgSelectedCount, One: "{{.Count}} selected", Other: "{{.Count}} selected"},
		&i18n.Message{ID: msgLoading, Other: "Loading"},
		&i18n.Message{ID: msgSave, Other: "Save"},
		&i18n.Message{ID: msgDiscard, Other: "Discard"},
	)
	return bundle
}

// Localizer resolves rowkit message IDs against a bundle.
type Localizer struct {
	loc *i18n.Localizer
}

// New creates a Localizer over bundle for the given language preferences.
func New(bundle *i18n.Bundle, langs ...string) *Localizer {
	return &Localizer{loc: i18n.NewLocalizer(bundle, langs...)}
}

// Default returns an English localizer over the built-in bundle.
func Default() *Localizer {
	return New(NewBundle(), language.English.String())
}

func (l *Localizer) localize(id string, data map[string]any) string {
	s, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}

// SelectLabel returns the accessible label for the selection checkbox.
// label falls back to a generic "checkbox" term when empty; selected
// flips the verb so the label always describes the action it performs.
func (l *Localizer) SelectLabel(label string, selected bool) string {
	if label == "" {
		label = l.localize(msgCheckbox, nil)
	}
	id := msgSelectRow
	if selected {
		id = msgDeselectRow
	}
	return l.localize(id, map[string]any{"Label": label})
}

// ActionsToggleLabel returns the accessible label for the disclosure toggle.
func (l *Localizer) ActionsToggleLabel() string {
	return l.localize(msgActionsToggle, nil)
}

// SelectAllLabel returns the label for the list's select-all control.
func (l *Localizer) SelectAllLabel() string {
	return l.localize(msgSelectAll, nil)
}

// SelectedCount returns the bulk-selection readout for n selected rows.
func (l *Localizer) SelectedCount(n int) string {
	s, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    msgSelectedCount,
		TemplateData: map[string]any{"Count": n},
		PluralCount:  n,
	})
	if err != nil {
		return msgSelectedCount
	}
	return s
}

// LoadingLabel returns the loading indicator text.
func (l *Localizer) LoadingLabel() string {
	return l.localize(msgLoading, nil)
}

// SaveLabel returns the default save-bar confirm label.
func (l *Localizer) SaveLabel() string {
	return l.localize(msgSave, nil)
}

// DiscardLabel returns the default save-bar discard label.
func (l *Localizer) DiscardLabel() string {
	return l.localize(msgDiscard, nil)
}
