package ports

// Navigator moves the host to another route.
type Navigator interface {
	Navigate(path string)
}
