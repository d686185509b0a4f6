package usecase

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/metadata"
)

var timeNow = time.Now

type MetadataUseCaseCfg struct {
	MetadataRepo metadata.Repo
}

type impl struct {
	metadataRepo metadata.Repo
}

func New(cfg *MetadataUseCaseCfg) metadata.UseCase {
	return &impl{
		metadataRepo: cfg.MetadataRepo,
	}
}

// NewVerifier exposes the same store as the sale-time verification
// collaborator.
func NewVerifier(cfg *MetadataUseCaseCfg) metadata.Verifier {
	return &impl{
		metadataRepo: cfg.MetadataRepo,
	}
}

func (im *impl) Register(c ctx.Ctx, params metadata.RegisterParams) (*metadata.Metadata, error) {
	if len(params.Name) > metadata.MaxNameLen ||
		len(params.Symbol) > metadata.MaxSymbolLen ||
		len(params.Uri) > metadata.MaxUriLen ||
		params.SellerFeeBasisPoints > metadata.MaxSellerFeeBasisPoints {
		return nil, domain.ErrInvalidMetadata
	}

	value := &metadata.Metadata{
		ItemId:               params.ItemId,
		Name:                 params.Name,
		Symbol:               params.Symbol,
		Uri:                  params.Uri,
		SellerFeeBasisPoints: params.SellerFeeBasisPoints,
		UpdateAuthority:      params.UpdateAuthority,
		CreatedAt:            timeNow(),
	}
	if err := im.metadataRepo.Create(c, value); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": params.ItemId,
		}).Error("metadataRepo.Create failed")
		return nil, err
	}

	return value, nil
}

func (im *impl) Get(c ctx.Ctx, itemId domain.ItemId) (*metadata.Metadata, error) {
	value, err := im.metadataRepo.FindOne(c, itemId)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":    err,
				"itemId": itemId,
			}).Error("metadataRepo.FindOne failed")
		}
		return nil, err
	}
	return value, nil
}

// Verify reports whether the item carries a well-formed metadata record.
// It never mutates state, so callers can gate fund movement on it.
func (im *impl) Verify(c ctx.Ctx, itemId domain.ItemId) (bool, error) {
	value, err := im.metadataRepo.FindOne(c, itemId)
	if err != nil {
		if err == domain.ErrNotFound {
			return false, nil
		}
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("metadataRepo.FindOne failed")
		return false, err
	}

	if len(value.Name) == 0 || len(value.Name) > metadata.MaxNameLen {
		return false, nil
	}
	if len(value.Symbol) > metadata.MaxSymbolLen {
		return false, nil
	}
	if len(value.Uri) == 0 || len(value.Uri) > metadata.MaxUriLen {
		return false, nil
	}
	if len(value.UpdateAuthority) == 0 {
		return false, nil
	}
	if value.SellerFeeBasisPoints > metadata.MaxSellerFeeBasisPoints {
		return false, nil
	}

	return true, nil
}
