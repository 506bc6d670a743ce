// Package store implements the storefront state engine: the selected pickup
// location, the cart, the signed-in user, and the append-only booking and
// order history. A single Store instance owns all mutable session state;
// consumers read derived views and funnel every mutation through the named
// operations below.
//
// Pricing is variant-based: a cart line is priced at its selected variant's
// price when one is set, otherwise at the item's base price. No location
// multiplier exists.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/churro-storefront/internal/catalog"
)

// User is a signed-in identity. Authentication is simulated; the engine
// trusts its caller to have validated the sign-in form.
type User struct {
	ID    string
	Name  string
	Email string
}

// BookingType tags a reservation as a table booking or a social event inquiry.
type BookingType string

const (
	BookingTable  BookingType = "table"
	BookingSocial BookingType = "social"
)

// Booking is a reservation record. Append-only once created.
type Booking struct {
	ID        string
	Type      BookingType
	Date      string
	Time      string
	Guests    int
	Location  string
	EventType string
}

// OrderLine is a snapshot of one cart line at checkout time.
type OrderLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Order is a completed-checkout record. Append-only once created.
type Order struct {
	ID       string
	Date     string
	Items    []OrderLine
	Total    decimal.Decimal
	Location string
}

// Line is one cart entry: an item snapshot, a positive quantity, and an
// optional selected variant. Lines are keyed by (item id, variant).
type Line struct {
	Item     catalog.MenuItem
	Quantity int
	Variant  string
}

// UnitPrice returns the line's per-unit price: the selected variant's price
// when set, the item base price otherwise.
func (l Line) UnitPrice() decimal.Decimal {
	if l.Variant != "" {
		if p, ok := l.Item.VariantPrice(l.Variant); ok {
			return p
		}
	}
	return l.Item.Price
}

// Subtotal returns UnitPrice multiplied by the line quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) key() lineKey {
	return lineKey{itemID: l.Item.ID, variant: l.Variant}
}

type lineKey struct {
	itemID  string
	variant string
}

// Store is the storefront state engine. All operations are safe for
// concurrent use; each one is a single atomic state transition.
type Store struct {
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
	metrics *metrics

	mu       sync.Mutex
	location catalog.Location
	cart     []Line
	user     *User
	bookings []Booking
	orders   []Order
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the engine clock. Used by tests to pin order dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record id generation. Used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store over the given catalog. The selected location starts
// at the catalog's default branch; the cart and history start empty.
func New(cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		catalog:  cat,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		location: cat.DefaultLocation(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the immutable catalog the engine was built over.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// SelectedLocation returns the currently selected pickup branch.
func (s *Store) SelectedLocation() catalog.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// SetLocation replaces the selected pickup branch. The cart is deliberately
// left untouched: lines for items unavailable at the new branch stay in the
// cart until the user removes them.
func (s *Store) SetLocation(loc catalog.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = loc
}

// AvailableItems returns the catalog items sellable at the selected location.
func (s *Store) AvailableItems() []catalog.MenuItem {
	s.mu.Lock()
	id := s.location.ID
	s.mu.Unlock()
	return s.catalog.AvailableAt(id)
}

// AddToCart adds one unit of the item to the cart. Lines are keyed by
// (item id, variant): adding an existing key increments its quantity, a new
// key appends a fresh line. Pass an empty variant for items without one.
func (s *Store) AddToCart(item catalog.MenuItem, variant string) {
	key := lineKey{itemID: item.ID, variant: variant}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].key() == key {
			s.cart[i].Quantity++
			s.metrics.cartAddition()
			return
		}
	}
	s.cart = append(s.cart, Line{Item: item, Quantity: 1, Variant: variant})
	s.metrics.cartAddition()
}

// RemoveFromCart removes every line whose base item id matches, regardless
// of selected variant. An unknown id is a no-op.
func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(itemID)
}

func (s *Store) removeLocked(itemID string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// UpdateQuantity sets the quantity of every line with the given base item
// id. A quantity of zero or less removes the line(s) instead; a line never
// exists with a non-positive quantity. An unknown id is a no-op.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(itemID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			s.cart[i].Quantity = quantity
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.cart...)
}

// CartTotal returns the sum of line subtotals.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cart)
}

func cartTotal(cart []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range cart {
		total = total.Add(line.Subtotal())
	}
	return total
}

// CartCount returns the total number of units in the cart, summed across
// line quantities.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// SetUser replaces the current identity. A non-nil user marks the session
// authenticated; nil signs out.
func (s *Store) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns a copy of the signed-in user, or nil when unauthenticated.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// AddBooking appends the booking to the history with a generated id and
// returns the stored record. It never fails and never deduplicates.
func (s *Store) AddBooking(b Booking) Booking {
	b.ID = s.newID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	s.metrics.booking()
	return b
}

// Bookings returns a copy of the booking history in insertion order.
func (s *Store) Bookings() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Booking(nil), s.bookings...)
}

// AddOrder appends the order to the history with a generated id and returns
// the stored record.
func (s *Store) AddOrder(o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addOrderLocked(o)
}

func (s *Store) addOrderLocked(o Order) Order {
	o.ID = s.newID()
	s.orders = append(s.orders, o)
	s.metrics.orderCompleted()
	return o
}

// Orders returns a copy of the order history in insertion order.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order(nil), s.orders...)
}

// CompleteCheckout appends the order and clears the cart as one state
// transition. No caller can observe the order recorded with the cart still
// populated.
func (s *Store) CompleteCheckout(o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.addOrderLocked(o)
	s.cart = nil
	return stored
}

// OrderSnapshot builds an Order from the current cart and selected location,
// dated with the engine clock. It does not mutate any state; callers pass
// the snapshot to CompleteCheckout.
func (s *Store) OrderSnapshot() Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]OrderLine, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, OrderLine{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.UnitPrice(),
		})
	}

	return Order{
		Date:     s.now().Format("2 Jan 2006, 15:04"),
		Items:    items,
		Total:    cartTotal(s.cart),
		Location: s.location.Name,
	}
}
