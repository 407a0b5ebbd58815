package service

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/auth"
)

func (s *Service) Register(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}

	user := model.User{
		Email:          req.Email,
		Password:       string(hash),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PublicBio:      req.PublicBio,
		FavouriteGenre: req.FavouriteGenre,
		Location:       req.Location,
		Age:            req.Age,
	}
	return s.repo.CreateUser(ctx, user)
}

func (s *Service) Authorize(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrBadCredentials
		}
		return model.AuthResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return model.AuthResponse{}, errs.ErrBadCredentials
	}

	expirationTime := s.now().Add(s.cfg.TokenTTL)
	claims := &auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}

	return model.AuthResponse{
		ExpiresIn:   int(expirationTime.Unix()),
		AccessToken: tokenString,
	}, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}
