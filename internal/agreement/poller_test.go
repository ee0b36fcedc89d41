package agreement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hiramlend/hiram/internal/agreement"
	"github.com/hiramlend/hiram/internal/esign"
)

func TestPoller_WaitForDraft(t *testing.T) {
	type testCase struct {
		name      string
		policy    agreement.PollPolicy
		setupMock func(m *agreement.MockDocumentClient)
		wantErr   error
	}

	policy := agreement.PollPolicy{MaxAttempts: 3, Interval: time.Millisecond}

	tests := []testCase{
		{
			name:   "DraftOnThirdCheck",
			policy: policy,
			setupMock: func(m *agreement.MockDocumentClient) {
				gomock.InOrder(
					m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusProcessing, nil),
					m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusProcessing, nil),
					m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusDraft, nil),
				)
			},
		},
		{
			name:   "AlreadySent",
			policy: policy,
			setupMock: func(m *agreement.MockDocumentClient) {
				m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusSent, nil)
			},
		},
		{
			name:   "BudgetExhausted",
			policy: policy,
			setupMock: func(m *agreement.MockDocumentClient) {
				m.EXPECT().
					GetStatus(gomock.Any(), "doc-1").
					Return(esign.StatusProcessing, nil).
					Times(3)
			},
			wantErr: agreement.ErrReadinessTimeout,
		},
		{
			name:   "QueryErrorConsumesAttempt",
			policy: agreement.PollPolicy{MaxAttempts: 2, Interval: time.Millisecond},
			setupMock: func(m *agreement.MockDocumentClient) {
				gomock.InOrder(
					m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusUnknown, errors.New("network error")),
					m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusDraft, nil),
				)
			},
		},
		{
			name:   "SingleFixedWait",
			policy: agreement.PollPolicy{MaxAttempts: 1, Interval: 2 * time.Millisecond},
			setupMock: func(m *agreement.MockDocumentClient) {
				m.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusDraft, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := agreement.NewMockDocumentClient(ctrl)
			tt.setupMock(client)

			p := agreement.NewPoller(client, tt.policy)

			err := p.WaitForDraft(context.Background(), "doc-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPoller_WaitsBeforeFirstCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := agreement.NewMockDocumentClient(ctrl)
	client.EXPECT().GetStatus(gomock.Any(), "doc-1").Return(esign.StatusDraft, nil)

	interval := 10 * time.Millisecond
	p := agreement.NewPoller(client, agreement.PollPolicy{MaxAttempts: 1, Interval: interval})

	start := time.Now()
	require.NoError(t, p.WaitForDraft(context.Background(), "doc-1"))
	assert.GreaterOrEqual(t, time.Since(start), interval)
}
