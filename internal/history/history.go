package history

import (
	"strconv"

	"myroom/pkg/kvstore"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

// Storage slots and default sizes of the visitor history lists.
const (
	KeyViewedHotels   = "myroom_recently_viewed_hotels"
	KeyRecentSearches = "myroom_recent_searches"
	KeyWishlist       = "wishlist"

	DefaultViewedHotelsCapacity   = 8
	DefaultRecentSearchesCapacity = 2
)

type (
	ViewedHotels   = Store[model.Hotel]
	RecentSearches = Store[model.RecentSearch]
)

// NewViewedHotels keeps the last hotels opened by the visitor, one entry per
// hotel.
func NewViewedHotels(kv kvstore.Store, log *logger.Logger, capacity int) *ViewedHotels {
	return NewStore(kv, log, Options[model.Hotel]{
		Key:      KeyViewedHotels,
		Capacity: capacity,
		KeyFunc:  func(h model.Hotel) string { return strconv.Itoa(h.PK) },
	})
}

// NewRecentSearches keeps the last searches, one entry per location.
func NewRecentSearches(kv kvstore.Store, log *logger.Logger, capacity int) *RecentSearches {
	return NewStore(kv, log, Options[model.RecentSearch]{
		Key:      KeyRecentSearches,
		Capacity: capacity,
		KeyFunc:  func(s model.RecentSearch) string { return s.Location.ID },
	})
}
