package glimpse

type Window interface {
	GetSize() (uint32, uint32)
	ShouldClose() bool
	Run(frame func(input UpdateInputState) error) error
	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// write a cpu profile while the window is open
	Profile bool
}
