package laundry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Sentinel errors returned by store operations.
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Store holds the shop's customers, package catalog, and bills in memory.
// All methods are safe for concurrent use. When a data file path is set,
// every mutation is written back to it.
type Store struct {
	mu        sync.RWMutex
	customers []Customer
	packages  []Package
	bills     map[string]*Bill
	path      string
}

// snapshot is the on-disk shape of the store.
type snapshot struct {
	Customers []Customer `json:"customers"`
	Packages  []Package  `json:"packages"`
	Bills     []Bill     `json:"bills"`
}

// Open loads the store from path if the file exists, otherwise starts a
// seeded store that will persist to path on the first write.
func Open(path string) (*Store, error) {
	if path == "" {
		return NewSeeded(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("no data file yet, seeding store", "path", path)
		s := NewSeeded()
		s.path = path
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}

	s := &Store{
		customers: snap.Customers,
		packages:  snap.Packages,
		bills:     make(map[string]*Bill, len(snap.Bills)),
		path:      path,
	}
	for i := range snap.Bills {
		b := snap.Bills[i]
		s.bills[b.ID] = &b
	}

	return s, nil
}

// NewSeeded returns an in-memory store preloaded with demo data.
func NewSeeded() *Store {
	return &Store{
		customers: []Customer{
			{ID: "c1", Name: "Ratna Dewi", PhoneNumber: "0812-5521-7730", Address: "Jl. Melati 14"},
			{ID: "c2", Name: "Budi Santoso", PhoneNumber: "0813-9904-1182", Address: "Jl. Kenanga 3"},
			{ID: "c3", Name: "Sari Wulandari", PhoneNumber: "0857-2210-6654", Address: "Jl. Anggrek 21"},
		},
		packages: []Package{
			{ID: "p1", Name: "Wash & Fold", Price: 7000, Type: "kiloan"},
			{ID: "p2", Name: "Wash & Iron", Price: 10000, Type: "kiloan"},
			{ID: "p3", Name: "Express Wash", Price: 15000, Type: "kiloan"},
			{ID: "p4", Name: "Bed Cover", Price: 35000, Type: "satuan"},
		},
		bills: make(map[string]*Bill),
	}
}

// Customers returns the customer list ordered by name.
func (s *Store) Customers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Customer, len(s.customers))
	copy(out, s.customers)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Packages returns the package catalog ordered by name.
func (s *Store) Packages() []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Package, len(s.packages))
	copy(out, s.packages)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CustomerByID looks up a customer.
func (s *Store) CustomerByID(id string) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customerByIDLocked(id)
}

func (s *Store) customerByIDLocked(id string) (Customer, error) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
}

// PackageByID looks up a package.
func (s *Store) PackageByID(id string) (Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.packageByIDLocked(id)
}

func (s *Store) packageByIDLocked(id string) (Package, error) {
	for _, p := range s.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return Package{}, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
}

// Transactions returns every bill detail joined with its customer, most
// recent finish date first.
func (s *Store) Transactions() []TransactionRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []TransactionRow
	for _, b := range s.bills {
		customerName := ""
		if c, err := s.customerByIDLocked(b.CustomerID); err == nil {
			customerName = c.Name
		}
		for _, d := range b.BillDetails {
			rows = append(rows, rowFromDetail(b, d, customerName))
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FinishDate.Equal(rows[j].FinishDate) {
			return rows[i].InvoiceID < rows[j].InvoiceID
		}
		return rows[i].FinishDate.After(rows[j].FinishDate)
	})
	return rows
}

// Transaction returns the bill detail with the given detail id.
func (s *Store) Transaction(detailID string) (TransactionRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, i, err := s.findDetailLocked(detailID)
	if err != nil {
		return TransactionRow{}, err
	}

	customerName := ""
	if c, cerr := s.customerByIDLocked(b.CustomerID); cerr == nil {
		customerName = c.Name
	}
	return rowFromDetail(b, b.BillDetails[i], customerName), nil
}

// AddTransaction creates a new bill from the request, assigning bill and
// detail ids. The line price is derived from the package price and qty.
func (s *Store) AddTransaction(req CreateTransactionRequest) (TransactionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customerByIDLocked(req.CustomerID)
	if err != nil {
		return TransactionRow{}, err
	}
	if len(req.BillDetails) == 0 {
		return TransactionRow{}, errors.New("create request has no bill details")
	}

	bill := &Bill{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
	}

	for _, p := range req.BillDetails {
		pkg, perr := s.packageByIDLocked(p.Product.ID)
		if perr != nil {
			return TransactionRow{}, perr
		}
		bill.BillDetails = append(bill.BillDetails, BillDetail{
			ID:            uuid.NewString(),
			BillID:        bill.ID,
			InvoiceID:     p.InvoiceID,
			Product:       pkg,
			Qty:           p.Qty,
			Price:         pkg.Price * int64(p.Qty),
			PaymentStatus: p.PaymentStatus,
			Status:        p.Status,
			FinishDate:    p.FinishDate,
		})
	}

	s.bills[bill.ID] = bill
	if err := s.saveLocked(); err != nil {
		return TransactionRow{}, err
	}

	log.Debug("transaction added", "bill_id", bill.ID, "customer", customer.Name)
	return rowFromDetail(bill, bill.BillDetails[0], customer.Name), nil
}

// UpdateTransaction updates detail lines on the bill named by req.ID.
// Lines are matched by their detail id; unknown lines are an error.
func (s *Store) UpdateTransaction(req UpdateTransactionRequest) (TransactionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, ok := s.bills[req.ID]
	if !ok {
		return TransactionRow{}, fmt.Errorf("%w: bill %s", ErrTransactionNotFound, req.ID)
	}
	if len(req.BillDetails) == 0 {
		return TransactionRow{}, errors.New("update request has no bill details")
	}

	var updated *BillDetail
	for _, p := range req.BillDetails {
		i := indexOfDetail(bill, p.ID)
		if i < 0 {
			return TransactionRow{}, fmt.Errorf("%w: detail %s", ErrTransactionNotFound, p.ID)
		}

		pkg, perr := s.packageByIDLocked(p.Product.ID)
		if perr != nil {
			return TransactionRow{}, perr
		}

		d := &bill.BillDetails[i]
		d.InvoiceID = p.InvoiceID
		d.Product = pkg
		d.Qty = p.Qty
		d.Price = pkg.Price * int64(p.Qty)
		d.PaymentStatus = p.PaymentStatus
		d.Status = p.Status
		d.FinishDate = p.FinishDate
		updated = d
	}

	if err := s.saveLocked(); err != nil {
		return TransactionRow{}, err
	}

	customerName := ""
	if c, cerr := s.customerByIDLocked(bill.CustomerID); cerr == nil {
		customerName = c.Name
	}

	log.Debug("transaction updated", "bill_id", bill.ID, "detail_id", updated.ID)
	return rowFromDetail(bill, *updated, customerName), nil
}

// SetPaymentStatus flips the payment status of one bill detail.
func (s *Store) SetPaymentStatus(detailID string, ps PaymentStatus) (TransactionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, i, err := s.findDetailLocked(detailID)
	if err != nil {
		return TransactionRow{}, err
	}

	b.BillDetails[i].PaymentStatus = ps
	if err := s.saveLocked(); err != nil {
		return TransactionRow{}, err
	}

	customerName := ""
	if c, cerr := s.customerByIDLocked(b.CustomerID); cerr == nil {
		customerName = c.Name
	}
	return rowFromDetail(b, b.BillDetails[i], customerName), nil
}

func (s *Store) findDetailLocked(detailID string) (*Bill, int, error) {
	for _, b := range s.bills {
		if i := indexOfDetail(b, detailID); i >= 0 {
			return b, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: detail %s", ErrTransactionNotFound, detailID)
}

func indexOfDetail(b *Bill, detailID string) int {
	for i, d := range b.BillDetails {
		if d.ID == detailID {
			return i
		}
	}
	return -1
}

func rowFromDetail(b *Bill, d BillDetail, customerName string) TransactionRow {
	return TransactionRow{
		ID:            d.ID,
		BillID:        b.ID,
		CustomerID:    b.CustomerID,
		CustomerName:  customerName,
		InvoiceID:     d.InvoiceID,
		Product:       d.Product,
		Qty:           d.Qty,
		Price:         d.Price,
		PaymentStatus: d.PaymentStatus,
		Status:        d.Status,
		FinishDate:    d.FinishDate,
	}
}

// saveLocked writes the store to its data file. Callers must hold mu.
func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}

	snap := snapshot{Customers: s.customers, Packages: s.packages}
	for _, b := range s.bills {
		snap.Bills = append(snap.Bills, *b)
	}
	sort.Slice(snap.Bills, func(i, j int) bool { return snap.Bills[i].ID < snap.Bills[j].ID })

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", s.path, err)
	}

	return nil
}

// Outstanding sums the unpaid line totals across all bills.
func (s *Store) Outstanding() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, b := range s.bills {
		for _, d := range b.BillDetails {
			if d.PaymentStatus == Unpaid {
				total += d.Price
			}
		}
	}
	return total
}

// seedBill inserts a bill with caller-chosen ids, bypassing id assignment.
func (s *Store) seedBill(b Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := b
	s.bills[copied.ID] = &copied
}
