package port

//go:generate mockgen -source=address_bar.go -destination=mock_port/address_bar.go -package=mock_port

// AddressBarDelegate receives the requests raised by the address bar.
// Implementations run on the caller's goroutine and must not call back into
// the address bar synchronously while holding their own locks.
type AddressBarDelegate interface {
	DidRequestNextPage()
	DidRequestPrevPage()
	// DidRequestString is called with the trimmed text the user submitted.
	DidRequestString(address string)
	DidRequestReloading()
	DidRequestCanceling()
}
