package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/srd"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/constants"
)

// SRDClient fetches the official spell catalog.
type SRDClient interface {
	ListSpells(ctx context.Context) (*srd.SpellList, error)
	GetSpell(ctx context.Context, path string) (*srd.SpellDetail, error)
}

// OfficialSpellImporter seeds the admin account with the SRD spells at
// startup. Missing spells are imported individually; a failing spell is
// logged and skipped so one bad document never aborts the run.
type OfficialSpellImporter struct {
	logger          *zap.Logger
	client          SRDClient
	userRepository  repository.UserRepository
	spellRepository repository.SpellRepository
}

// NewOfficialSpellImporter creates the importer.
func NewOfficialSpellImporter(
	logger *zap.Logger,
	client SRDClient,
	userRepo repository.UserRepository,
	spellRepo repository.SpellRepository,
) *OfficialSpellImporter {
	return &OfficialSpellImporter{
		logger:          logger,
		client:          client,
		userRepository:  userRepo,
		spellRepository: spellRepo,
	}
}

// Run ensures the admin account exists and imports any official spells
// that are not yet stored.
func (i *OfficialSpellImporter) Run(ctx context.Context) error {
	admin, err := i.ensureAdminUser(ctx)
	if err != nil {
		return err
	}

	list, err := i.client.ListSpells(ctx)
	if err != nil {
		return err
	}

	stored, err := i.spellRepository.CountByUser(ctx, admin.ID)
	if err != nil {
		return err
	}

	if stored == int64(list.Count) {
		i.logger.Info("official spell catalog up to date", zap.Int64("count", stored))
		return nil
	}

	i.logger.Info("importing official spells",
		zap.Int64("stored", stored),
		zap.Int("available", list.Count),
	)

	imported := 0
	for _, ref := range list.Results {
		if err := ctx.Err(); err != nil {
			return err
		}

		exists, err := i.spellRepository.ExistsByUserAndName(ctx, admin.ID, strings.TrimSpace(ref.Name))
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		detail, err := i.client.GetSpell(ctx, ref.URL)
		if err != nil {
			i.logger.Warn("failed to fetch official spell",
				zap.String("spell", ref.Name), zap.Error(err))
			continue
		}

		spell := i.mapSpell(admin.ID, detail)
		if err := i.spellRepository.Save(ctx, spell); err != nil {
			i.logger.Warn("failed to store official spell",
				zap.String("spell", ref.Name), zap.Error(err))
			continue
		}
		imported++
	}

	i.logger.Info("official spell import finished", zap.Int("imported", imported))
	return nil
}

// ensureAdminUser finds or creates the account that owns official spells.
func (i *OfficialSpellImporter) ensureAdminUser(ctx context.Context) (*entity.User, error) {
	admin, err := i.userRepository.FindByUsername(ctx, constants.AdminUsername)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		return admin, nil
	}

	i.logger.Info("admin account missing, creating it")
	admin = &entity.User{
		ID:         uuid.New().String(),
		Username:   constants.AdminUsername,
		SignupDate: time.Now(),
	}
	if err := i.userRepository.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// mapSpell converts an SRD document into a publicly visible spell owned
// by the admin account.
func (i *OfficialSpellImporter) mapSpell(adminID string, detail *srd.SpellDetail) *entity.Spell {
	spell := &entity.Spell{
		UserID:        adminID,
		PublicVisible: true,
		Name:          detail.Name,
		Level:         detail.Level,
		School:        detail.School.Name,
		CastTime:      detail.CastingTime,
		CastRange:     detail.Range,
		Duration:      detail.Duration,
		Concentration: detail.Concentration,
		Ritual:        detail.Ritual,
	}

	if len(detail.Desc) > 0 {
		spell.Description = detail.Desc[0]
	}

	components, err := json.Marshal(detail.Components)
	if err == nil {
		spell.Components = string(components)
	} else {
		spell.Components = "[]"
	}

	if detail.Damage != nil {
		if detail.Damage.DamageType != nil {
			damageType := entity.SpellDamageType(strings.ToUpper(detail.Damage.DamageType.Name))
			if damageType.IsValid() {
				spell.DamageType = damageType
			} else {
				i.logger.Warn("unknown damage type, skipping field",
					zap.String("spell", detail.Name),
					zap.String("damage_type", detail.Damage.DamageType.Name),
				)
			}
		}
		if len(detail.Damage.DamageAtSlotLevel) > 0 {
			spell.DamageByLevel = detail.Damage.DamageAtSlotLevel
		}
	}

	return spell
}
