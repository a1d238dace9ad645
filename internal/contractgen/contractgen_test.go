package contractgen

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/trueqia/pkg/clients"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func testSummary() Summary {
	return Summary{
		TradeID:    uuid.MustParse("0192f1a4-7b3c-7def-8000-000000000001"),
		OfferTitle: "Guitar lessons",
		FromUserID: 1,
		ToUserID:   2,
		Tokens:     40,
		ResolvedAt: time.Date(2024, 11, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestTemplateGenerator(t *testing.T) {
	text, err := TemplateGenerator{}.Generate(context.Background(), testSummary())

	assert.NoError(t, err)
	assert.Equal(t, "TRADE AGREEMENT 0192f1a4-7b3c-7def-8000-000000000001\n\n"+
		"User #1 transfers 40 tokens to user #2 in exchange for \"Guitar lessons\".\n"+
		"Settled on 2024-11-02T10:00:00Z.\n"+
		"Both parties accept the exchange as final.", text)
}

func TestHTTPGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := clients.NewMockHTTPClientI(ctrl)
	fallback := NewMockGenerator(ctrl)
	generator := NewHTTPGenerator("http://contracts:9000/", client, fallback)
	const url = "http://contracts:9000/api/contracts"

	tests := []struct {
		name         string
		prepareMock  func()
		expectedText string
	}{
		{
			name: "Service returns the text",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), url, nil, gomock.Any()).
					Return(http.StatusOK, []byte(`{"text":"signed contract"}`), nil, nil)
			},
			expectedText: "signed contract",
		},
		{
			name: "Transport failure falls back",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), url, nil, gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused"))
				fallback.EXPECT().Generate(gomock.Any(), testSummary()).Return("template", nil)
			},
			expectedText: "template",
		},
		{
			name: "Unexpected status falls back",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), url, nil, gomock.Any()).
					Return(http.StatusServiceUnavailable, nil, nil, nil)
				fallback.EXPECT().Generate(gomock.Any(), testSummary()).Return("template", nil)
			},
			expectedText: "template",
		},
		{
			name: "Malformed body falls back",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), url, nil, gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), nil, nil)
				fallback.EXPECT().Generate(gomock.Any(), testSummary()).Return("template", nil)
			},
			expectedText: "template",
		},
		{
			name: "Empty text falls back",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), url, nil, gomock.Any()).
					Return(http.StatusOK, []byte(`{"text":"  "}`), nil, nil)
				fallback.EXPECT().Generate(gomock.Any(), testSummary()).Return("template", nil)
			},
			expectedText: "template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			text, err := generator.Generate(context.Background(), testSummary())
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
		})
	}
}

func TestHTTPGenerator_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := clients.NewMockHTTPClientI(ctrl)
	generator := NewHTTPGenerator("http://contracts:9000/", client, TemplateGenerator{})
	const url = "http://contracts:9000/health"

	client.EXPECT().Get(gomock.Any(), url, nil).Return(http.StatusOK, nil, nil, nil)
	assert.NoError(t, generator.Ping(context.Background()))

	client.EXPECT().Get(gomock.Any(), url, nil).Return(http.StatusServiceUnavailable, nil, nil, nil)
	assert.ErrorIs(t, generator.Ping(context.Background()), ErrUnexpectedStatus)

	client.EXPECT().Get(gomock.Any(), url, nil).Return(0, nil, nil, errors.New("connection refused"))
	assert.Error(t, generator.Ping(context.Background()))
}

func TestNew(t *testing.T) {
	assert.IsType(t, TemplateGenerator{}, New("", nil))
	assert.IsType(t, &HTTPGenerator{}, New("http://contracts", clients.NewHTTPClient(time.Second)))
}
