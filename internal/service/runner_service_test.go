package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeViewGateway struct {
	openedTriggers []string
	updated        chan slack.ModalViewRequest
	updatedViewIDs []string
	openErr        error
}

func newFakeViewGateway() *fakeViewGateway {
	return &fakeViewGateway{updated: make(chan slack.ModalViewRequest, 1)}
}

func (f *fakeViewGateway) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	f.openedTriggers = append(f.openedTriggers, triggerID)
	return f.openErr
}

func (f *fakeViewGateway) UpdateView(ctx context.Context, viewID string, view slack.ModalViewRequest) error {
	f.updatedViewIDs = append(f.updatedViewIDs, viewID)
	f.updated <- view
	return nil
}

func runSubmissionCallback(text, lang string) slack.InteractionCallback {
	return slack.InteractionCallback{
		Type: slack.InteractionTypeViewSubmission,
		View: slack.View{
			ID:         "V123",
			CallbackID: ViewRunTranslation,
			State: &slack.ViewState{
				Values: map[string]map[string]slack.BlockAction{
					textBlockID: {inputAction: {Value: text}},
					langBlockID: {inputAction: {SelectedOption: slack.OptionBlockObject{Value: lang}}},
				},
			},
		},
	}
}

func TestTranslationModalOffersEveryDialogLanguage(t *testing.T) {
	modal := buildTranslationModal("")
	assert.Equal(t, ViewRunTranslation, modal.CallbackID)
	require.Len(t, modal.Blocks.BlockSet, 2)

	langInput, ok := modal.Blocks.BlockSet[0].(*slack.InputBlock)
	require.True(t, ok)
	langSelect, ok := langInput.Element.(*slack.SelectBlockElement)
	require.True(t, ok)
	require.Len(t, langSelect.Options, len(modalLanguages))
	assert.Equal(t, "EN", langSelect.Options[0].Value)
	assert.Equal(t, "ZH", langSelect.Options[len(langSelect.Options)-1].Value)
}

func TestOpenTranslationModal(t *testing.T) {
	views := newFakeViewGateway()
	svc := NewRunnerService(views, &fakeTranslator{}, zap.NewNop())

	svc.OpenTranslationModal(context.Background(), "trigger-1")
	assert.Equal(t, []string{"trigger-1"}, views.openedTriggers)
}

func TestHandleRunSubmissionAcksWithLoadingViewThenUpdates(t *testing.T) {
	views := newFakeViewGateway()
	translator := &fakeTranslator{result: "Bonjour"}
	svc := NewRunnerService(views, translator, zap.NewNop())

	resp := svc.HandleRunSubmission(context.Background(), runSubmissionCallback("Hello", "FR"))
	require.NotNil(t, resp)
	assert.Equal(t, slack.RAUpdate, resp.ResponseAction)
	require.NotNil(t, resp.View)
	assert.Equal(t, ViewNewRunner, resp.View.CallbackID)

	select {
	case updated := <-views.updated:
		require.Len(t, updated.Blocks.BlockSet, 3)
		result, ok := updated.Blocks.BlockSet[2].(*slack.SectionBlock)
		require.True(t, ok)
		assert.True(t, strings.Contains(result.Text.Text, "Bonjour"))
	case <-time.After(time.Second):
		t.Fatal("view was never updated with the translation result")
	}
	assert.Equal(t, []string{"V123"}, views.updatedViewIDs)
}

func TestHandleRunSubmissionShowsFailurePlaceholder(t *testing.T) {
	views := newFakeViewGateway()
	translator := &fakeTranslator{err: errors.New("provider down")}
	svc := NewRunnerService(views, translator, zap.NewNop())

	svc.HandleRunSubmission(context.Background(), runSubmissionCallback("Hello", "FR"))

	select {
	case updated := <-views.updated:
		result, ok := updated.Blocks.BlockSet[2].(*slack.SectionBlock)
		require.True(t, ok)
		assert.True(t, strings.Contains(result.Text.Text, translationFailedText))
	case <-time.After(time.Second):
		t.Fatal("view was never updated with the failure placeholder")
	}
}

func TestHandleNewRunnerSubmissionResetsModal(t *testing.T) {
	views := newFakeViewGateway()
	svc := NewRunnerService(views, &fakeTranslator{}, zap.NewNop())

	callback := slack.InteractionCallback{
		View: slack.View{CallbackID: ViewNewRunner, PrivateMetadata: "previous text"},
	}
	resp := svc.HandleNewRunnerSubmission(callback)
	require.NotNil(t, resp)
	assert.Equal(t, slack.RAUpdate, resp.ResponseAction)
	require.NotNil(t, resp.View)
	assert.Equal(t, ViewRunTranslation, resp.View.CallbackID)
}
