// Package domain contains the business entities of the rental listing
// system: users, places, reviews, and amenities. Entities validate
// themselves on construction and on every mutation, so invalid state
// never reaches the storage or service layers.
package domain
