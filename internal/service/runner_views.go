package service

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Callback ids of the on-demand translation modal flow.
const (
	ShortcutTranslation   = "deepl-translation"
	ViewRunTranslation    = "run-translation"
	ViewNewRunner         = "new-runner"
	translationFailedText = ":x: Failed to translate it for some reason"
)

const (
	langBlockID = "lang"
	textBlockID = "text"
	inputAction = "a"
)

// modalLanguages is the set offered in the on-demand dialog, a curated
// subset of what the reaction tables cover.
var modalLanguages = []struct {
	Code  string
	Label string
}{
	{"EN", "English"},
	{"DE", "German"},
	{"FR", "French"},
	{"ES", "Spanish"},
	{"IT", "Italian"},
	{"NL", "Dutch"},
	{"PL", "Polish"},
	{"PT", "Portuguese"},
	{"RU", "Russian"},
	{"JA", "Japanese"},
	{"KO", "Korean"},
	{"ZH", "Chinese"},
}

func buildTranslationModal(initialText string) slack.ModalViewRequest {
	options := make([]*slack.OptionBlockObject, 0, len(modalLanguages))
	for _, l := range modalLanguages {
		options = append(options, slack.NewOptionBlockObject(
			l.Code,
			slack.NewTextBlockObject(slack.PlainTextType, l.Label, false, false),
			nil,
		))
	}

	langSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		slack.NewTextBlockObject(slack.PlainTextType, "Choose a language", false, false),
		inputAction,
		options...,
	)

	textInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "Text to translate", false, false),
		inputAction,
	)
	textInput.Multiline = true
	textInput.InitialValue = initialText

	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: ViewRunTranslation,
		Title:      slack.NewTextBlockObject(slack.PlainTextType, "DeepL Translator", false, false),
		Submit:     slack.NewTextBlockObject(slack.PlainTextType, "Translate", false, false),
		Close:      slack.NewTextBlockObject(slack.PlainTextType, "Close", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewInputBlock(
					langBlockID,
					slack.NewTextBlockObject(slack.PlainTextType, "Language", false, false),
					nil,
					langSelect,
				),
				slack.NewInputBlock(
					textBlockID,
					slack.NewTextBlockObject(slack.PlainTextType, "Text", false, false),
					nil,
					textInput,
				),
			},
		},
	}
}

func buildLoadingView(lang, text string) slack.ModalViewRequest {
	return resultShell(lang, text, ":hourglass_flowing_sand: Translating...")
}

func buildResultView(lang, text, result string) slack.ModalViewRequest {
	return resultShell(lang, text, result)
}

// resultShell renders the submitted text alongside the translation area.
// Submitting it again ("Translate another") starts a fresh modal, carrying
// the original text through private metadata.
func resultShell(lang, text, result string) slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      ViewNewRunner,
		PrivateMetadata: text,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "DeepL Translator", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "Translate another", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "Close", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Original:*\n%s", text), false, false),
					nil, nil,
				),
				slack.NewDividerBlock(),
				slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Translation (%s):*\n%s", lang, result), false, false),
					nil, nil,
				),
			},
		},
	}
}
