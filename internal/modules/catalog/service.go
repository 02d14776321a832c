package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/georgemunganga/vendor-portal/internal/modules/vendor"
)

const (
	StatusDraft = "draft"

	metafieldNamespace = "seller"
	metafieldType      = "single_line_text_field"
)

// plainDecimal is the only price notation forwarded upstream: no sign, no
// exponent.
var plainDecimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ErrSubmissionFailed wraps any failure to create the draft upstream.
var ErrSubmissionFailed = errors.New("catalog: submission failed")

// ValidationError lists the submission fields that were rejected.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return strings.Join(e.Missing, ", ") + " required"
	}
	return strings.Join(e.Invalid, ", ") + " invalid"
}

// Service defines catalog submission logic.
type Service interface {
	SubmitProduct(ctx context.Context, sub VendorSubmission) (*DraftProduct, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: newValidator()}
}

func (s *service) SubmitProduct(ctx context.Context, sub VendorSubmission) (*DraftProduct, error) {
	sub = normalize(sub)
	if err := s.check(sub); err != nil {
		return nil, err
	}

	p := NewDraftProduct(sub)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	return p, nil
}

func (s *service) check(sub VendorSubmission) error {
	err := s.validate.Struct(sub)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			verr.Missing = append(verr.Missing, fe.Field())
		} else {
			verr.Invalid = append(verr.Invalid, fe.Field())
		}
	}
	return verr
}

// optionalMetafields maps each optional attribute to the metafield it fills.
var optionalMetafields = []struct {
	key   string
	value func(Attributes) Text
}{
	{key: "dimensions", value: func(a Attributes) Text { return a.Dimensions }},
	{key: "medium", value: func(a Attributes) Text { return a.Medium }},
	{key: "year", value: func(a Attributes) Text { return a.Year }},
}

// NewDraftProduct shapes a validated submission into the draft the catalog
// stores. Blank optional attributes produce no metafield at all.
func NewDraftProduct(sub VendorSubmission) *DraftProduct {
	id := vendor.ID(sub.VendorID)

	images := make([]string, 0, len(sub.Images))
	for _, img := range sub.Images {
		images = append(images, img.URL)
	}

	metafields := []Metafield{newMetafield("vendor_id", string(sub.VendorID))}
	for _, m := range optionalMetafields {
		if v := m.value(sub.Attributes).trimmed(); v != "" {
			metafields = append(metafields, newMetafield(m.key, v))
		}
	}

	return &DraftProduct{
		Title:       sub.Title,
		Description: sub.Description,
		Status:      StatusDraft,
		Vendor:      id.DisplayName(),
		Tags:        []string{id.Tag()},
		Price:       string(sub.Price),
		ImageURLs:   images,
		Metafields:  metafields,
	}
}

func newMetafield(key, value string) Metafield {
	return Metafield{Namespace: metafieldNamespace, Key: key, Type: metafieldType, Value: value}
}

func normalize(sub VendorSubmission) VendorSubmission {
	sub.VendorID = Text(sub.VendorID.trimmed())
	sub.Title = strings.TrimSpace(sub.Title)
	sub.Price = Text(sub.Price.trimmed())

	images := make([]Image, 0, len(sub.Images))
	for _, img := range sub.Images {
		img.URL = strings.TrimSpace(img.URL)
		if img.URL != "" {
			images = append(images, img)
		}
	}
	sub.Images = images
	return sub
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("vendorid", func(fl validator.FieldLevel) bool {
		return vendor.ID(fl.Field().String()).Valid()
	})
	v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !plainDecimal.MatchString(s) {
			return false
		}
		_, err := decimal.NewFromString(s)
		return err == nil
	})
	return v
}
