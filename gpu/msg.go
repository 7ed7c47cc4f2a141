package gpu

import "github.com/sarchlab/akita/v4/sim"

// CommandMsg carries one sampled step of decoder input: the reset and valid
// flags and the command word. The word is meaningful only when Valid is set.
type CommandMsg struct {
	sim.MsgMeta

	Reset bool
	Valid bool
	Word  CommandWord
}

// Meta returns the meta data of the msg.
func (m *CommandMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *CommandMsg) Clone() sim.Msg {
	c := *m
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// CommandMsgBuilder is a factory for CommandMsg.
type CommandMsgBuilder struct {
	src, dst sim.RemotePort
	reset    bool
	valid    bool
	word     CommandWord
}

// WithSrc sets the source port of the msg.
func (b CommandMsgBuilder) WithSrc(src sim.RemotePort) CommandMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b CommandMsgBuilder) WithDst(dst sim.RemotePort) CommandMsgBuilder {
	b.dst = dst
	return b
}

// WithReset sets the reset flag.
func (b CommandMsgBuilder) WithReset(reset bool) CommandMsgBuilder {
	b.reset = reset
	return b
}

// WithValid sets the valid flag.
func (b CommandMsgBuilder) WithValid(valid bool) CommandMsgBuilder {
	b.valid = valid
	return b
}

// WithWord sets the command word.
func (b CommandMsgBuilder) WithWord(word CommandWord) CommandMsgBuilder {
	b.word = word
	return b
}

// Build creates a CommandMsg.
func (b CommandMsgBuilder) Build() *CommandMsg {
	return &CommandMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Reset: b.reset,
		Valid: b.valid,
		Word:  b.word,
	}
}

// DecodedMsg announces one accepted command to the downstream consumer. One
// message is sent per acceptance; it is the message form of the one-cycle
// start pulse.
type DecodedMsg struct {
	sim.MsgMeta

	Cmd DecodedCommand
}

// Meta returns the meta data of the msg.
func (m *DecodedMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *DecodedMsg) Clone() sim.Msg {
	c := *m
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// DecodedMsgBuilder is a factory for DecodedMsg.
type DecodedMsgBuilder struct {
	src, dst sim.RemotePort
	cmd      DecodedCommand
}

// WithSrc sets the source port of the msg.
func (b DecodedMsgBuilder) WithSrc(src sim.RemotePort) DecodedMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b DecodedMsgBuilder) WithDst(dst sim.RemotePort) DecodedMsgBuilder {
	b.dst = dst
	return b
}

// WithCmd sets the decoded command carried by the msg.
func (b DecodedMsgBuilder) WithCmd(cmd DecodedCommand) DecodedMsgBuilder {
	b.cmd = cmd
	return b
}

// Build creates a DecodedMsg.
func (b DecodedMsgBuilder) Build() *DecodedMsg {
	return &DecodedMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Cmd: b.cmd,
	}
}
