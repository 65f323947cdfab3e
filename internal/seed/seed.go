// Package seed loads the sample catalogue and the first admin account.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"skyline/config"
	authDto "skyline/internal/domains/auth/model/dto"
	facilityModel "skyline/internal/domains/facility/model"
	facilityDto "skyline/internal/domains/facility/model/dto"
	facilityRepo "skyline/internal/domains/facility/repository"
	foodModel "skyline/internal/domains/food/model"
	foodDto "skyline/internal/domains/food/model/dto"
	foodRepo "skyline/internal/domains/food/repository"
	roomModel "skyline/internal/domains/room/model"
	roomDto "skyline/internal/domains/room/model/dto"
	roomRepo "skyline/internal/domains/room/repository"
	userModel "skyline/internal/domains/user/model"
	userRepo "skyline/internal/domains/user/repository"
	"skyline/shared"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/password"
	"skyline/shared/validator"

	"github.com/rs/zerolog/log"
)

//go:embed data.json
var sampleData []byte

type Data struct {
	Rooms      []roomDto.CreateRoomRequest         `json:"rooms"`
	Facilities []facilityDto.CreateFacilityRequest `json:"facilities"`
	Food       []foodDto.CreateFoodRequest         `json:"food"`
}

func Sample() (Data, error) {
	var data Data

	if err := json.Unmarshal(sampleData, &data); err != nil {
		return data, fmt.Errorf("failed to decode sample data: %w", err)
	}

	return data, nil
}

type Seeder struct {
	cfg        *config.Config
	users      userRepo.User
	rooms      roomRepo.Room
	facilities facilityRepo.Facility
	food       foodRepo.Food
}

func New(cfg *config.Config, users userRepo.User, rooms roomRepo.Room, facilities facilityRepo.Facility, food foodRepo.Food) *Seeder {
	return &Seeder{
		cfg:        cfg,
		users:      users,
		rooms:      rooms,
		facilities: facilities,
		food:       food,
	}
}

type store[M any] interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, model M) error
}

type request[M, Req any] interface {
	*Req
	Normalize()
	ToModel(user string) M
}

// insert adds every item whose key column is still free. Records already present are
// left untouched so the command can be rerun.
func insert[M, Req any, R request[M, Req]](ctx context.Context, kind, table, column string, repo store[M], items []Req, key func(*Req) string) (int, error) {
	created := 0

	for i := range items {
		item := R(&items[i])
		item.Normalize()

		if err := validator.ValidateStruct(&items[i]); err != nil {
			return created, fmt.Errorf("invalid %s %q: %w", kind, key(&items[i]), err)
		}

		exists, err := repo.Exist(ctx, shared.FilterByID(key(&items[i]), column, table))
		if err != nil {
			return created, fmt.Errorf("failed to look up %s %q: %w", kind, key(&items[i]), err)
		}

		if exists {
			log.Debug().Str("kind", kind).Str("key", key(&items[i])).Msg("already seeded, skipping")

			continue
		}

		if err = repo.Insert(ctx, item.ToModel(constant.ContextSystem)); err != nil {
			return created, fmt.Errorf("failed to insert %s %q: %w", kind, key(&items[i]), err)
		}

		created++
	}

	log.Info().Str("kind", kind).Int("created", created).Int("total", len(items)).Msg("Seeded")

	return created, nil
}

func (s *Seeder) Run(ctx context.Context, data Data) error {
	if _, err := insert[roomModel.Room, roomDto.CreateRoomRequest](ctx, "room", roomModel.TableName, roomModel.FieldName, s.rooms, data.Rooms,
		func(r *roomDto.CreateRoomRequest) string { return r.Name }); err != nil {
		return err
	}

	if _, err := insert[facilityModel.Facility, facilityDto.CreateFacilityRequest](ctx, "facility", facilityModel.TableName, facilityModel.FieldName, s.facilities, data.Facilities,
		func(r *facilityDto.CreateFacilityRequest) string { return r.Name }); err != nil {
		return err
	}

	if _, err := insert[foodModel.Food, foodDto.CreateFoodRequest](ctx, "food", foodModel.TableName, foodModel.FieldName, s.food, data.Food,
		func(r *foodDto.CreateFoodRequest) string { return r.Name }); err != nil {
		return err
	}

	return s.Admin(ctx)
}

// Admin creates the configured administrator. Signup only ever creates guests, so this
// is the one way an admin account comes to exist.
func (s *Seeder) Admin(ctx context.Context) error {
	admin := s.cfg.Seed
	if admin.AdminEmail == constant.Empty {
		log.Warn().Msg("SEED_ADMIN_EMAIL not set, skipping admin account")

		return nil
	}

	req := authDto.SignupRequest{
		Name:     admin.AdminName,
		Email:    admin.AdminEmail,
		Password: admin.AdminPassword,
	}

	if admin.AdminPhone != constant.Empty {
		req.Phone = &admin.AdminPhone
	}

	req.Normalize()

	if err := validator.ValidateStruct(&req); err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	exists, err := s.users.Exist(ctx, shared.FilterByID(req.Email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if exists {
		log.Info().Str("email", req.Email).Msg("Admin account already exists")

		return nil
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err = s.users.Insert(ctx, req.ToUserModel(hashed, userModel.RoleAdmin)); err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("Admin account created")

	return nil
}
