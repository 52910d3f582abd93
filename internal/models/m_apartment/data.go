package m_apartment

import "time"

// Data represents a row of the apartments table.
type Data struct {
	ApartmentID string    `spanner:"apartment_id"`
	Name        string    `spanner:"name"`
	Address     string    `spanner:"address"`
	TotalFlats  int64     `spanner:"total_flats"`
	Version     int64     `spanner:"version"`
	CreatedAt   time.Time `spanner:"created_at"`
	UpdatedAt   time.Time `spanner:"updated_at"`
}
