package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	service_mocks "github.com/Astemirdum/biblioteca-service/biblioteca/internal/service/mocks"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00")
)

func TestService_UploadAvatar(t *testing.T) {
	t.Parallel()
	reader := auth.Profile{UserID: 5, Email: "r@x.io", Role: auth.RoleReader}
	librarian := auth.Profile{UserID: 1, Email: "b@x.io", Role: auth.RoleLibrarian}

	type mockBehavior func(r *repoMock, s *service_mocks.MockAvatarStore)
	tests := []struct {
		name         string
		caller       auth.Profile
		userID       int64
		data         []byte
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:   "ok. owner uploads png",
			caller: reader,
			userID: 5,
			data:   pngHeader,
			mockBehavior: func(r *repoMock, s *service_mocks.MockAvatarStore) {
				r.EXPECT().GetUser(gomock.Any(), int64(5)).Return(model.User{ID: 5}, nil)
				s.EXPECT().Save(gomock.Any(), int64(5), ".png", pngHeader).Return("5/avatar.png", nil)
				r.EXPECT().SetUserAvatar(gomock.Any(), int64(5), "5/avatar.png").Return(nil)
			},
		},
		{
			name:   "ok. librarian uploads gif for someone else",
			caller: librarian,
			userID: 5,
			data:   gifHeader,
			mockBehavior: func(r *repoMock, s *service_mocks.MockAvatarStore) {
				r.EXPECT().GetUser(gomock.Any(), int64(5)).Return(model.User{ID: 5}, nil)
				s.EXPECT().Save(gomock.Any(), int64(5), ".gif", gifHeader).Return("5/avatar.gif", nil)
				r.EXPECT().SetUserAvatar(gomock.Any(), int64(5), "5/avatar.gif").Return(nil)
			},
		},
		{
			name:         "err. reader uploads for someone else",
			caller:       reader,
			userID:       6,
			data:         pngHeader,
			mockBehavior: func(*repoMock, *service_mocks.MockAvatarStore) {},
			wantErr:      errs.ErrForbidden,
		},
		{
			name:         "err. not an image",
			caller:       reader,
			userID:       5,
			data:         []byte("%PDF-1.7\n"),
			mockBehavior: func(*repoMock, *service_mocks.MockAvatarStore) {},
			wantErr:      errs.ErrUnsupportedMedia,
		},
		{
			name:         "err. too large",
			caller:       reader,
			userID:       5,
			data:         append(append([]byte{}, pngHeader...), make([]byte, service.MaxAvatarSize)...),
			mockBehavior: func(*repoMock, *service_mocks.MockAvatarStore) {},
			wantErr:      errs.ErrFileTooLarge,
		},
		{
			name:   "err. unknown user",
			caller: librarian,
			userID: 77,
			data:   pngHeader,
			mockBehavior: func(r *repoMock, _ *service_mocks.MockAvatarStore) {
				r.EXPECT().GetUser(gomock.Any(), int64(77)).Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			store := service_mocks.NewMockAvatarStore(c)
			svc, repo := newService(t, service.WithAvatarStore(store))
			tt.mockBehavior(repo, store)

			_, claims, err := auth.NewTokenManager(tokenCfg).Issue(tt.caller)
			require.NoError(t, err)
			ctx := auth.SetAuthContext(context.Background(), claims)

			err = svc.UploadAvatar(ctx, tt.userID, bytes.NewReader(tt.data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_GetAvatar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := "5/avatar.png"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		store := service_mocks.NewMockAvatarStore(c)
		svc, repo := newService(t, service.WithAvatarStore(store))
		repo.EXPECT().GetUser(ctx, int64(5)).Return(model.User{ID: 5, Avatar: &path}, nil)
		store.EXPECT().Open(ctx, path).Return(pngHeader, nil)

		got, err := svc.GetAvatar(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, model.Avatar{Data: pngHeader, ContentType: "image/png", FileName: "avatar.png"}, got)
	})

	t.Run("err. no avatar", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		svc, repo := newService(t, service.WithAvatarStore(service_mocks.NewMockAvatarStore(c)))
		repo.EXPECT().GetUser(ctx, int64(5)).Return(model.User{ID: 5}, nil)

		_, err := svc.GetAvatar(ctx, 5)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
