package service

import (
	"context"
	"errors"
	"testing"

	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExplainerService_CacheHit(t *testing.T) {
	mockCache := new(MockCache)
	textGen := new(MockTextGenerator)
	svc := NewExplainerService(mockCache, textGen)

	mockCache.On("Get", mock.Anything, explainerKey("01")).Return("Cached explainer text.", nil)

	text, err := svc.Explain(context.Background(), "01")

	assert.NoError(t, err)
	assert.Equal(t, "Cached explainer text.", text)
	textGen.AssertNotCalled(t, "Generate")
}

func TestExplainerService_MissGeneratesAndCaches(t *testing.T) {
	mockCache := new(MockCache)
	textGen := new(MockTextGenerator)
	svc := NewExplainerService(mockCache, textGen)

	mockCache.On("Get", mock.Anything, explainerKey("02")).Return("", domain.ErrCacheMiss)
	textGen.On("Generate", mock.Anything, domain.TaskPillarExplainer, mock.MatchedBy(func(p domain.GenerationPayload) bool {
		return p.PillarID == "02"
	})).Return("Generated explainer for fair wages.", nil)
	mockCache.On("Set", mock.Anything, explainerKey("02"), "Generated explainer for fair wages.", explainerTTL).Return(nil)

	text, err := svc.Explain(context.Background(), "02")

	assert.NoError(t, err)
	assert.Equal(t, "Generated explainer for fair wages.", text)
	mockCache.AssertExpectations(t)
	textGen.AssertExpectations(t)
}

func TestExplainerService_UnknownPillar(t *testing.T) {
	svc := NewExplainerService(new(MockCache), new(MockTextGenerator))

	_, err := svc.Explain(context.Background(), "42")

	assert.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	assert.True(t, ok)
	assert.Equal(t, domain.CodePillarNotFound, domainErr.Code)
}

func TestExplainerService_GenerationFailureFallsBackToSummary(t *testing.T) {
	mockCache := new(MockCache)
	textGen := new(MockTextGenerator)
	svc := NewExplainerService(mockCache, textGen)

	mockCache.On("Get", mock.Anything, explainerKey("03")).Return("", domain.ErrCacheMiss)
	textGen.On("Generate", mock.Anything, domain.TaskPillarExplainer, mock.Anything).
		Return("", errors.New("model overloaded"))

	text, err := svc.Explain(context.Background(), "03")

	assert.NoError(t, err)
	pillar, _ := catalog.PillarByID("03")
	assert.Equal(t, pillar.Summary, text)
	mockCache.AssertNotCalled(t, "Set")
}
