package catalogservice

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/pkg/clients"
)

const videoURL = "http://catalog/api/videos/vid-1"

func NewMock(t *testing.T) (*Service, *clients.MockHTTPClientI, *MockCache) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	cache := NewMockCache(ctrl)
	return New("http://catalog", client, cache, nil, 5*time.Minute, 1), client, cache
}

func TestVideoMetadata(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI, cache *MockCache)
		expected    *domain.VideoMetadata
		expectErr   error
		anyErr      bool
	}{
		{
			name: "Cache hit",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return([]byte(`{"id":"vid-1","is_active":true,"reward":5}`), nil)
			},
			expected: &domain.VideoMetadata{VideoID: "vid-1", IsActive: true, Reward: 5},
		},
		{
			name: "Cache miss fetches and stores",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).
					Return(http.StatusOK, []byte(`{"id":"vid-1","is_active":true,"reward":3}`), nil)
				cache.EXPECT().Set(gomock.Any(), "video:vid-1", []byte(`{"id":"vid-1","is_active":true,"reward":3}`), 5*time.Minute).Return(nil)
			},
			expected: &domain.VideoMetadata{VideoID: "vid-1", IsActive: true, Reward: 3},
		},
		{
			name: "Missing reward uses the default",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).
					Return(http.StatusOK, []byte(`{"id":"vid-1","is_active":false}`), nil)
				cache.EXPECT().Set(gomock.Any(), "video:vid-1", gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &domain.VideoMetadata{VideoID: "vid-1", IsActive: false, Reward: 1},
		},
		{
			name: "Broken cache does not fail the lookup",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, errors.New("connection refused"))
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).
					Return(http.StatusOK, []byte(`{"id":"vid-1","is_active":true,"reward":2}`), nil)
				cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			expected: &domain.VideoMetadata{VideoID: "vid-1", IsActive: true, Reward: 2},
		},
		{
			name: "Unknown video",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).Return(http.StatusNotFound, nil, nil)
			},
			expectErr: domain.ErrVideoNotFound,
		},
		{
			name: "Catalog failure",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).Return(http.StatusInternalServerError, nil, nil)
			},
			anyErr: true,
		},
		{
			name: "Negative reward is not cached",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).
					Return(http.StatusOK, []byte(`{"id":"vid-1","is_active":true,"reward":-4}`), nil)
			},
			anyErr: true,
		},
		{
			name: "Transport error",
			prepareMock: func(client *clients.MockHTTPClientI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), "video:vid-1").Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), videoURL, gomock.Nil()).Return(0, nil, errors.New("dial tcp: refused"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client, cache := NewMock(t)
			tt.prepareMock(client, cache)

			meta, err := service.VideoMetadata(context.Background(), "vid-1")
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.False(t, domain.IsPolicyDenial(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, meta)
			}
		})
	}
}
