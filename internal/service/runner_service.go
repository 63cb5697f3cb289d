package service

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// ViewGateway is the modal surface of the chat platform.
type ViewGateway interface {
	OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
	UpdateView(ctx context.Context, viewID string, view slack.ModalViewRequest) error
}

// RunnerService drives the on-demand translation dialog.
type RunnerService struct {
	views      ViewGateway
	translator Translator
	logger     *zap.Logger
}

// NewRunnerService constructs the service.
func NewRunnerService(views ViewGateway, translator Translator, logger *zap.Logger) *RunnerService {
	return &RunnerService{views: views, translator: translator, logger: logger}
}

// OpenTranslationModal opens the dialog in response to the global shortcut.
func (s *RunnerService) OpenTranslationModal(ctx context.Context, triggerID string) {
	if err := s.views.OpenView(ctx, triggerID, buildTranslationModal("")); err != nil {
		s.logger.Error("opening translation modal failed", zap.Error(err))
	}
}

// HandleRunSubmission acks a dialog submission with a loading view and kicks
// off the translation; the opened view is updated with the result once it
// arrives. Unlike the reaction flow, a failed translation stays visible as
// an inline placeholder.
func (s *RunnerService) HandleRunSubmission(ctx context.Context, callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	if callback.View.State == nil {
		return slack.NewClearViewSubmissionResponse()
	}
	values := callback.View.State.Values
	text := values[textBlockID][inputAction].Value
	lang := values[langBlockID][inputAction].SelectedOption.Value
	viewID := callback.View.ID

	go func() {
		result, err := s.translator.Translate(context.Background(), text, lang)
		if err != nil {
			s.logger.Warn("on-demand translation failed", zap.String("language", lang), zap.Error(err))
			result = translationFailedText
		}
		if err := s.views.UpdateView(context.Background(), viewID, buildResultView(lang, text, result)); err != nil {
			s.logger.Error("updating result view failed", zap.Error(err))
		}
	}()

	loading := buildLoadingView(lang, text)
	return slack.NewUpdateViewSubmissionResponse(&loading)
}

// HandleNewRunnerSubmission resets the result view back to a fresh dialog,
// pre-filled with the previously submitted text.
func (s *RunnerService) HandleNewRunnerSubmission(callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	modal := buildTranslationModal(callback.View.PrivateMetadata)
	return slack.NewUpdateViewSubmissionResponse(&modal)
}
