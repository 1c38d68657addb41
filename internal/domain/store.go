package domain

// Store is a seller's catalog and reputation record. It is keyed by the
// identity of its owner, so ID and Owner always hold the same value.
type Store struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Banner        string    `json:"banner"`
	Location      string    `json:"location"`
	Owner         string    `json:"owner"`
	Rating        uint32    `json:"rating"`
	Reviewers     []string  `json:"reviewers"`
	Rates         []int32   `json:"rates"`
	StoreProducts []Product `json:"store_products"`
}

// StoreDetails are the owner-editable fields of a store.
type StoreDetails struct {
	Name        string
	Description string
	Banner      string
	Location    string
}

func (d StoreDetails) Valid() bool {
	return d.Name != "" && d.Description != "" && d.Banner != "" && d.Location != ""
}

func NewStore(owner string, d StoreDetails) *Store {
	s := &Store{
		ID:            owner,
		Owner:         owner,
		Reviewers:     []string{},
		Rates:         []int32{},
		StoreProducts: []Product{},
	}
	s.UpdateDetails(d)
	return s
}

func (s *Store) UpdateDetails(d StoreDetails) {
	s.Name = d.Name
	s.Description = d.Description
	s.Banner = d.Banner
	s.Location = d.Location
}

// FindProduct returns the position of the product with the given id, or -1.
func (s *Store) FindProduct(productID string) int {
	for i := range s.StoreProducts {
		if s.StoreProducts[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) AddProduct(owner, productID string, d ProductDetails, available uint32) Product {
	p := Product{
		CatalogItem: CatalogItem{ID: productID},
		Owner:       owner,
		Available:   available,
	}
	p.apply(d)
	s.StoreProducts = append(s.StoreProducts, p)
	return p
}

// UpdateProduct rewrites the descriptive fields and price of the product at
// idx. Sold and available counts are left alone.
func (s *Store) UpdateProduct(idx int, d ProductDetails) {
	s.StoreProducts[idx].apply(d)
}

func (s *Store) DeleteProduct(idx int) {
	s.StoreProducts = RemoveAt(s.StoreProducts, idx)
}

// Rate records the reviewer's rating, replacing a previous one from the same
// reviewer, and recomputes the truncated integer average.
func (s *Store) Rate(reviewer string, rating int32) {
	pos := -1
	for i, r := range s.Reviewers {
		if r == reviewer {
			pos = i
			break
		}
	}
	if pos < 0 {
		s.Reviewers = append(s.Reviewers, reviewer)
		s.Rates = append(s.Rates, rating)
	} else {
		s.Rates[pos] = rating
	}

	var sum int64
	for _, r := range s.Rates {
		sum += int64(r)
	}
	s.Rating = uint32(sum / int64(len(s.Reviewers)))
}

// Clone returns a deep copy so callers can mutate it without touching the
// stored value.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	c := *s
	c.Reviewers = append([]string{}, s.Reviewers...)
	c.Rates = append([]int32{}, s.Rates...)
	c.StoreProducts = append([]Product{}, s.StoreProducts...)
	return &c
}
