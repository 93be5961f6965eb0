package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"catalog-service/internal/models"

	"github.com/google/uuid"
)

// Wizard steps. Validation failures on commit re-focus StepIdentity, where
// name, category and store visibility are set.
const (
	StepIdentity = 1
	StepPricing  = 2
	StepContent  = 3
	StepMedia    = 4
)

// ErrAttachPending rejects a commit while an image read is still in flight.
var ErrAttachPending = errors.New("image attachment still in progress")

// Wizard stages a product draft across the four admin steps. Navigating
// between steps never persists; the draft reaches the store only through
// Commit. The draft is a plain entity value: an empty ID means a create.
type Wizard struct {
	admin *AdminService

	mu      sync.Mutex
	step    int
	draft   models.Product
	pending map[string]struct{}
}

// NewWizard opens the create flow with an empty Active draft.
func NewWizard(admin *AdminService, defaultCategoryID string) *Wizard {
	return &Wizard{
		admin: admin,
		step:  StepIdentity,
		draft: models.Product{
			CategoryID: defaultCategoryID,
			Status:     models.StatusActive,
			Images:     []string{},
			Countries:  []models.CountryCode{},
			Prices:     []models.ProductPrice{},
		},
		pending: make(map[string]struct{}),
	}
}

// EditWizard opens the edit flow, seeding the draft from the existing entity.
func EditWizard(admin *AdminService, product models.Product) *Wizard {
	return &Wizard{
		admin:   admin,
		step:    StepIdentity,
		draft:   product,
		pending: make(map[string]struct{}),
	}
}

// Step returns the current wizard step.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next moves forward one step, stopping at the review step.
func (w *Wizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < StepMedia {
		w.step++
	}
}

// Prev moves back one step, stopping at the first.
func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepIdentity {
		w.step--
	}
}

// Draft returns a copy of the staged draft.
func (w *Wizard) Draft() models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Update applies a field edit to the staged draft.
func (w *Wizard) Update(edit func(draft *models.Product)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	edit(&w.draft)
}

// ToggleCountry flips a market's visibility. Adding a market appends a
// zero-amount price entry in its canonical currency; removing it drops the
// matching entry, so countries and prices stay in sync by construction.
func (w *Wizard) ToggleCountry(country models.CountryCode) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, c := range w.draft.Countries {
		if c == country {
			w.draft.Countries = append(w.draft.Countries[:i], w.draft.Countries[i+1:]...)
			for j, p := range w.draft.Prices {
				if p.Country == country {
					w.draft.Prices = append(w.draft.Prices[:j], w.draft.Prices[j+1:]...)
					break
				}
			}
			return
		}
	}

	w.draft.Countries = append(w.draft.Countries, country)
	w.draft.Prices = append(w.draft.Prices, models.ProductPrice{
		Country:  country,
		Amount:   0,
		Currency: models.CurrencyFor(country),
	})
}

// SetPrice updates the amount of a market's price entry. Markets that are not
// toggled on have no entry and are left untouched.
func (w *Wizard) SetPrice(country models.CountryCode, amount float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, p := range w.draft.Prices {
		if p.Country == country {
			w.draft.Prices[i].Amount = amount
			return
		}
	}
}

// BeginImageAttach registers an in-flight asynchronous image read and returns
// its token. Commit is blocked until every token is finished or cancelled.
func (w *Wizard) BeginImageAttach() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	token := uuid.New().String()
	w.pending[token] = struct{}{}
	return token
}

// FinishImageAttach resolves an in-flight read, appending the image reference
// to the draft. The reference (data URI or URL) passes through verbatim.
func (w *Wizard) FinishImageAttach(token, imageRef string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.pending[token]; !ok {
		return fmt.Errorf("unknown image attach token: %s", token)
	}
	delete(w.pending, token)
	w.draft.Images = append(w.draft.Images, imageRef)
	return nil
}

// CancelImageAttach abandons an in-flight read without touching the draft.
func (w *Wizard) CancelImageAttach(token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.pending, token)
}

// RemoveImage drops an image reference from the draft by position.
func (w *Wizard) RemoveImage(index int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.draft.Images) {
		return
	}
	w.draft.Images = append(w.draft.Images[:index], w.draft.Images[index+1:]...)
}

// Commit atomically saves the staged draft through the admin flow. A
// validation rejection re-focuses the wizard on the step where the missing
// input is corrected and leaves the draft untouched for another attempt.
func (w *Wizard) Commit(ctx context.Context) (models.Product, error) {
	w.mu.Lock()
	if len(w.pending) > 0 {
		w.mu.Unlock()
		return models.Product{}, ErrAttachPending
	}
	draft := w.draft
	w.mu.Unlock()

	saved, err := w.admin.SaveProduct(ctx, draft)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && verr.Step > 0 {
			w.mu.Lock()
			w.step = verr.Step
			w.mu.Unlock()
		}
		return models.Product{}, err
	}

	w.mu.Lock()
	w.draft = saved
	w.mu.Unlock()
	return saved, nil
}
