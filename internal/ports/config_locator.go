package ports

// ConfigLocator finds a workoutlog workspace root starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
