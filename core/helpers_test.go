package core

// Shared test fixtures: mock HAL drivers and global-state reset. The core
// uses global driver singletons, so every test that touches the machine
// installs fresh mocks first.

// mockGPIODriver is a test implementation of GPIODriver
type mockGPIODriver struct {
	pins     map[GPIOPin]bool
	setCalls int
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{pins: make(map[GPIOPin]bool)}
}

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	m.pins[pin] = false
	return nil
}

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	m.pins[pin] = value
	m.setCalls++
	return nil
}

func (m *mockGPIODriver) GetPin(pin GPIOPin) (bool, error) {
	return m.pins[pin], nil
}

// mockADCDriver records fire-and-forget conversion requests
type mockADCDriver struct {
	starts []ADCChannelID
}

func newMockADCDriver() *mockADCDriver {
	return &mockADCDriver{}
}

func (m *mockADCDriver) Init(cfg ADCConfig) error {
	return nil
}

func (m *mockADCDriver) ConfigureChannel(ch ADCChannelID) error {
	return nil
}

func (m *mockADCDriver) StartConversion(ch ADCChannelID) {
	m.starts = append(m.starts, ch)
}

const (
	testPin     = GPIOPin(15)
	testChannel = ADCChannelID(0)
)

// setupCore installs mock drivers, clears the coordinator and serial
// writer, and resets the fake clock.
func setupCore() (*mockGPIODriver, *mockADCDriver) {
	gpio := newMockGPIODriver()
	adc := newMockADCDriver()
	SetGPIODriver(gpio)
	SetADCDriver(adc)
	_ = gpio.ConfigureOutput(testPin)

	state := disableInterrupts()
	sharedMachine = nil
	sharedContext = nil
	restoreInterrupts(state)

	serialWrite = func([]byte) {}
	SetTime(0)
	return gpio, adc
}

// newTestMachine builds an initialized machine/context pair without
// publishing it.
func newTestMachine() (*Machine, *Context) {
	ctx := &Context{Pin: testPin, Channel: testChannel}
	m := NewMachine()
	m.Init(ctx)
	return m, ctx
}

// forceState puts the machine into a state without running entry actions,
// for table-driven no-op checks.
func forceState(m *Machine, s State) {
	m.state = s
}

func tick() Event {
	return Event{Type: EventTick}
}

func sample(v ADCValue) Event {
	return Event{Type: EventSampleReady, Value: v}
}
