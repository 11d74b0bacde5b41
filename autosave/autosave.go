package autosave

// Trigger decides when buffered records should be flushed. Implementations
// signal on C after enough records or enough time has accumulated.
type Trigger interface {
	C() chan struct{}
	RecordLogged(count int)
	Close()
}
