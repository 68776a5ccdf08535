package models

// ColumnReport holds per-column inference results.
type ColumnReport struct {
	// Name is the header value, or a Column_N placeholder.
	Name string `json:"name"`
	// Index is the 1-based column index.
	Index int `json:"index"`
	// Types lists the distinct value kinds observed in the sampled
	// window, in first-observation order, or the single no_data
	// sentinel when the window was entirely empty.
	Types []string `json:"types"`
	// Buckets lists matched semantic buckets, sorted (comprehensive mode).
	Buckets []string `json:"buckets,omitempty"`
	// Pattern is the column's value profile (comprehensive mode).
	Pattern *ColumnPattern `json:"pattern,omitempty"`
}

// ColumnPattern profiles a column's values over the data region.
type ColumnPattern struct {
	// Type is "numeric" when only integer/float kinds were observed,
	// "categorical" otherwise.
	Type string `json:"type"`
	// UniqueCount is the number of distinct non-empty values
	// (categorical only).
	UniqueCount int `json:"unique_count,omitempty"`
	// SampleValues holds up to 10 distinct values in first-observation
	// order (categorical only).
	SampleValues []string `json:"sample_values,omitempty"`
	// Min is the minimum value (numeric only).
	Min *float64 `json:"min,omitempty"`
	// Max is the maximum value (numeric only).
	Max *float64 `json:"max,omitempty"`
	// Mean is the arithmetic mean (numeric only).
	Mean *float64 `json:"mean,omitempty"`
	// NonNullCount is the number of non-empty cells profiled.
	NonNullCount int `json:"non_null_count"`
}

// FieldBuckets groups column names by matched keyword bucket.
type FieldBuckets struct {
	// Location lists columns naming a place or administrative area.
	Location []string `json:"location_fields"`
	// Crop lists columns naming a crop, variety or product type.
	Crop []string `json:"crop_fields"`
	// Stock lists columns naming a quantity or stock level.
	Stock []string `json:"stock_fields"`
	// Outlet lists columns naming a store, seller or vendor.
	Outlet []string `json:"outlet_fields"`
}
