// Package seed loads the bootstrap fixture: the first admin account and
// the initial catalog.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	domainUser "github.com/BruksfildServices01/physio-clinic/internal/domain/user"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type Admin struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Phone     string `yaml:"phone"`
}

type Therapy struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	PriceMin    int    `yaml:"priceMin"`
	PriceMax    int    `yaml:"priceMax"`
	Duration    int    `yaml:"duration"`
}

type Physiotherapist struct {
	Name            string `yaml:"name"`
	Role            string `yaml:"role"`
	Description     string `yaml:"description"`
	Image           string `yaml:"image"`
	Experience      string `yaml:"experience"`
	Specializations string `yaml:"specializations"`
}

type Fixture struct {
	Admin            *Admin            `yaml:"admin"`
	Therapies        []Therapy         `yaml:"therapies"`
	Physiotherapists []Physiotherapist `yaml:"physiotherapists"`
}

// Decode reads a YAML fixture and rejects unknown keys.
func Decode(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

type Repos struct {
	Users            domainUser.Repository
	Therapies        catalog.TherapyRepository
	Physiotherapists catalog.PhysiotherapistRepository
}

type Result struct {
	AdminCreated     bool
	Therapies        int
	Physiotherapists int
}

// Apply inserts what is missing. Entries already present (by e-mail or
// name) are left untouched, so running it twice is harmless.
func Apply(ctx context.Context, f *Fixture, repos Repos, hasher auth.PasswordHasher, log *slog.Logger) (Result, error) {
	var res Result

	if f.Admin != nil {
		created, err := ensureAdmin(ctx, f.Admin, repos.Users, hasher)
		if err != nil {
			return res, err
		}
		res.AdminCreated = created
		if !created {
			log.Info("admin already present", "email", f.Admin.Email)
		}
	}

	for _, t := range f.Therapies {
		_, err := repos.Therapies.FindByName(ctx, t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return res, err
		}
		if err := repos.Therapies.Create(ctx, &models.Therapy{
			Name:        t.Name,
			Description: t.Description,
			PriceMin:    t.PriceMin,
			PriceMax:    t.PriceMax,
			Duration:    t.Duration,
			IsActive:    true,
		}); err != nil {
			return res, fmt.Errorf("create therapy %q: %w", t.Name, err)
		}
		res.Therapies++
	}

	for _, p := range f.Physiotherapists {
		_, err := repos.Physiotherapists.FindByName(ctx, p.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return res, err
		}
		rec := &models.Physiotherapist{
			Name:            p.Name,
			Role:            p.Role,
			Description:     p.Description,
			Experience:      p.Experience,
			Specializations: p.Specializations,
			IsActive:        true,
		}
		if img := strings.TrimSpace(p.Image); img != "" {
			rec.Image = &img
		}
		if err := repos.Physiotherapists.Create(ctx, rec); err != nil {
			return res, fmt.Errorf("create physiotherapist %q: %w", p.Name, err)
		}
		res.Physiotherapists++
	}

	return res, nil
}

func ensureAdmin(ctx context.Context, a *Admin, users domainUser.Repository, hasher auth.PasswordHasher) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(a.Email))
	if email == "" || a.Password == "" {
		return false, errors.New("seed: admin needs an email and a password")
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	hashed, err := hasher.Hash(a.Password)
	if err != nil {
		return false, err
	}
	if err := users.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: hashed,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        a.Phone,
		IsAdmin:      true,
	}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
