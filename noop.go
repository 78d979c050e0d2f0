package eclair

// NoopFacade discards every record. Useful as a stand-in during tests and
// for muting selected loggers.
type NoopFacade struct{}

// Ensure NoopFacade implements Facade interface.
var _ Facade = NoopFacade{}

// Log discards the message.
func (NoopFacade) Log(_ Level, _ string) {}

// LogError discards the message and its cause.
func (NoopFacade) LogError(_ Level, _ string, _ error) {}

// NoopFacadeFactory hands out a shared NoopFacade for every logger name.
type NoopFacadeFactory struct{}

// Ensure NoopFacadeFactory implements FacadeFactory interface.
var _ FacadeFactory = NoopFacadeFactory{}

// GetFacade returns the shared no-op facade.
func (NoopFacadeFactory) GetFacade(_ string) Facade {
	return NoopFacade{}
}
