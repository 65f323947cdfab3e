package seed_test

import (
	"context"
	"errors"
	"testing"

	"skyline/config"
	facilityMocks "skyline/internal/domains/facility/mocks"
	foodMocks "skyline/internal/domains/food/mocks"
	roomModel "skyline/internal/domains/room/model"
	roomDto "skyline/internal/domains/room/model/dto"
	roomMocks "skyline/internal/domains/room/mocks"
	userModel "skyline/internal/domains/user/model"
	userMocks "skyline/internal/domains/user/mocks"
	"skyline/internal/seed"
	"skyline/shared"
	"skyline/shared/password"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cfg        *config.Config
	users      *userMocks.MockUser
	rooms      *roomMocks.MockRoom
	facilities *facilityMocks.MockFacility
	food       *foodMocks.MockFood
	seeder     *seed.Seeder
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		cfg:        &config.Config{},
		users:      userMocks.NewMockUser(ctrl),
		rooms:      roomMocks.NewMockRoom(ctrl),
		facilities: facilityMocks.NewMockFacility(ctrl),
		food:       foodMocks.NewMockFood(ctrl),
	}
	f.seeder = seed.New(f.cfg, f.users, f.rooms, f.facilities, f.food)

	return f
}

func TestSample(t *testing.T) {
	data, err := seed.Sample()

	assert.NoError(t, err)
	assert.Len(t, data.Rooms, 6)
	assert.Len(t, data.Facilities, 10)
	assert.Len(t, data.Food, 15)
	assert.Equal(t, "Deluxe Ocean View Suite", data.Rooms[0].Name)
}

func TestRun(t *testing.T) {
	t.Run("existing records are skipped", func(t *testing.T) {
		f := setup(t)

		data := seed.Data{Rooms: []roomDto.CreateRoomRequest{
			{Name: " Garden Suite ", Description: "Quiet", Price: shared.Ptr(200.0), Capacity: 2, Size: 30},
			{Name: "Attic Single", Description: "Small", Price: shared.Ptr(90.0), Capacity: 1, Size: 12},
		}}

		f.rooms.EXPECT().Exist(gomock.Any(), shared.FilterByID("Garden Suite", roomModel.FieldName, roomModel.TableName)).Return(true, nil)
		f.rooms.EXPECT().Exist(gomock.Any(), shared.FilterByID("Attic Single", roomModel.FieldName, roomModel.TableName)).Return(false, nil)
		f.rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room roomModel.Room) error {
			assert.Equal(t, "Attic Single", room.Name)
			assert.Equal(t, roomModel.TypeSingle, room.Type)
			assert.True(t, room.Availability)

			return nil
		})

		assert.NoError(t, f.seeder.Run(context.Background(), data))
	})

	t.Run("invalid sample stops the run", func(t *testing.T) {
		f := setup(t)

		data := seed.Data{Rooms: []roomDto.CreateRoomRequest{
			{Name: "Broom Cupboard", Description: "Tiny", Price: shared.Ptr(10.0), Capacity: 1, Size: 2},
		}}

		err := f.seeder.Run(context.Background(), data)

		assert.ErrorContains(t, err, `invalid room "Broom Cupboard"`)
	})

	t.Run("insert failure is reported", func(t *testing.T) {
		f := setup(t)

		data := seed.Data{Rooms: []roomDto.CreateRoomRequest{
			{Name: "Garden Suite", Description: "Quiet", Price: shared.Ptr(200.0), Capacity: 2, Size: 30},
		}}

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		assert.ErrorContains(t, f.seeder.Run(context.Background(), data), "failed to insert room")
	})
}

func TestAdmin(t *testing.T) {
	t.Run("skipped without an email", func(t *testing.T) {
		f := setup(t)

		assert.NoError(t, f.seeder.Admin(context.Background()))
	})

	t.Run("created with the admin role", func(t *testing.T) {
		f := setup(t)
		f.cfg.Seed.AdminName = "Hotel Admin"
		f.cfg.Seed.AdminEmail = " Admin@Skyline.test "
		f.cfg.Seed.AdminPassword = "s3cret-pass"

		f.users.EXPECT().Exist(gomock.Any(), shared.FilterByID("admin@skyline.test", userModel.FieldEmail, userModel.TableName)).Return(false, nil)
		f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user userModel.User) error {
			assert.Equal(t, userModel.RoleAdmin, user.Role)
			assert.Equal(t, "admin@skyline.test", user.Email)
			assert.NoError(t, password.Verify("s3cret-pass", user.Password))

			return nil
		})

		assert.NoError(t, f.seeder.Admin(context.Background()))
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		f := setup(t)
		f.cfg.Seed.AdminName = "Hotel Admin"
		f.cfg.Seed.AdminEmail = "admin@skyline.test"
		f.cfg.Seed.AdminPassword = "s3cret-pass"

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		assert.NoError(t, f.seeder.Admin(context.Background()))
	})
}
