package input

// holdLatch keeps continuous intents active between key repeats
// Terminals report presses and auto-repeats but never releases
type holdLatch struct {
	ticks     int
	remaining [intentCount]int
}

func (l *holdLatch) press(it IntentType) {
	l.remaining[it] = l.ticks
	// Opposite directions cancel each other on press
	switch it {
	case IntentThrustForward:
		l.remaining[IntentThrustReverse] = 0
	case IntentThrustReverse:
		l.remaining[IntentThrustForward] = 0
	case IntentRotateLeft:
		l.remaining[IntentRotateRight] = 0
	case IntentRotateRight:
		l.remaining[IntentRotateLeft] = 0
	}
}

func (l *holdLatch) active(it IntentType) bool {
	return l.remaining[it] > 0
}

func (l *holdLatch) advance() {
	for i := range l.remaining {
		if l.remaining[i] > 0 {
			l.remaining[i]--
		}
	}
}

func (l *holdLatch) clear() {
	l.remaining = [intentCount]int{}
}
