package client

import (
	"time"

	"myroom/pkg/logger"
)

// Client groups the typed clients of the hotel API behind one HttpClient.
type Client struct {
	HTTP     *HttpClient
	Search   *SearchClient
	Hotels   *HotelClient
	Bookings *BookingClient
}

func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	httpClient := NewHttpClient(baseURL, timeout, log)
	return &Client{
		HTTP:     httpClient,
		Search:   NewSearchClient(httpClient),
		Hotels:   NewHotelClient(httpClient),
		Bookings: NewBookingClient(httpClient),
	}
}

func (c *Client) SetObserver(o Observer) {
	c.HTTP.Observer = o
}
