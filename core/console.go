package core

// Console parses the boot-window administrative command stream. The
// only command is
//
//	SET_TOTAL H=<hours> M=<minutes>
//
// accepted before normal operation begins and ignored afterwards.
// Malformed input is dropped without effect; there is no error
// channel.
type Console struct {
	mgr  *Manager
	line []byte
}

const maxConsoleLine = 64

// NewConsole creates a console bound to the manager.
func NewConsole(mgr *Manager) *Console {
	return &Console{
		mgr:  mgr,
		line: make([]byte, 0, maxConsoleLine),
	}
}

// ProcessByte assembles input into lines and applies complete
// commands. Returns true when a command was applied.
func (c *Console) ProcessByte(b byte) bool {
	if b == '\n' || b == '\r' {
		line := string(c.line)
		c.line = c.line[:0]
		return c.processLine(line)
	}
	if len(c.line) < maxConsoleLine {
		c.line = append(c.line, b)
	}
	return false
}

func (c *Console) processLine(line string) bool {
	i := skipSpace(line, 0)
	word, i := takeWord(line, i)
	if word != "SET_TOTAL" {
		return false
	}

	hours, i, ok := parseKeyValue(line, i, 'H')
	if !ok {
		return false
	}
	minutes, i, ok := parseKeyValue(line, i, 'M')
	if !ok || minutes >= 60 {
		return false
	}
	if skipSpace(line, i) != len(line) {
		return false
	}

	c.mgr.SetTotal(hours, minutes)
	return true
}

// parseKeyValue consumes "<key>=<digits>" after optional whitespace.
func parseKeyValue(s string, i int, key byte) (uint32, int, bool) {
	i = skipSpace(s, i)
	if i+1 >= len(s) || s[i] != key || s[i+1] != '=' {
		return 0, i, false
	}
	return parseUint(s, i+2)
}

func parseUint(s string, i int) (uint32, int, bool) {
	start := i
	var n uint32
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + uint32(s[i]-'0')
		i++
	}
	if i == start {
		return 0, i, false
	}
	return n, i, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func takeWord(s string, i int) (string, int) {
	start := i
	for i < len(s) && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	return s[start:i], i
}
