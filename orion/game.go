package orion

type Game interface {
	// Initialize is called once before the first call to Update.
	Initialize() error

	// Update is called once per frame after the input state was
	// refreshed.
	Update() error
}
