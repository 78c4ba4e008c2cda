package client

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
)

// LoginRequestPacket sends the account credentials.
//
//	username string
//	BREAK
//	password string
type LoginRequestPacket struct {
	byteSize int

	Username string
	Password string
}

func (s LoginRequestPacket) Family() packet.Family {
	return packet.FamilyLogin
}

func (s LoginRequestPacket) Action() packet.Action {
	return packet.ActionRequest
}

func (s *LoginRequestPacket) ByteSize() int {
	return s.byteSize
}

func (s *LoginRequestPacket) Serialize(writer *data.EoWriter) (err error) {
	oldSanitize := writer.SanitizeStrings()
	defer func() { writer.SetSanitizeStrings(oldSanitize) }()

	writer.SetSanitizeStrings(true)
	if err = writer.AddString(s.Username); err != nil {
		return
	}
	writer.AddBreak()
	if err = writer.AddString(s.Password); err != nil {
		return
	}
	writer.AddBreak()
	return
}

func (s *LoginRequestPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	reader.SetIsChunked(true)
	if s.Username, err = reader.GetString(); err != nil {
		return
	}
	if err = reader.NextChunk(); err != nil {
		return
	}
	if s.Password, err = reader.GetString(); err != nil {
		return
	}
	if err = reader.NextChunk(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// AccountCreatePacket registers a new account.
//
//	session_id short
//	BREAK
//	username   string
//	BREAK
//	password   string
//	BREAK
//	full_name  string
//	BREAK
//	location   string
//	BREAK
//	email      string
//	BREAK
//	computer   string
//	BREAK
//	hdid       string
//	BREAK
type AccountCreatePacket struct {
	byteSize int

	SessionId int
	Username  string
	Password  string
	FullName  string
	Location  string
	Email     string
	Computer  string
	Hdid      string
}

func (s AccountCreatePacket) Family() packet.Family {
	return packet.FamilyAccount
}

func (s AccountCreatePacket) Action() packet.Action {
	return packet.ActionCreate
}

func (s *AccountCreatePacket) ByteSize() int {
	return s.byteSize
}

func (s *AccountCreatePacket) fields() []*string {
	return []*string{&s.Username, &s.Password, &s.FullName, &s.Location, &s.Email, &s.Computer, &s.Hdid}
}

func (s *AccountCreatePacket) Serialize(writer *data.EoWriter) (err error) {
	oldSanitize := writer.SanitizeStrings()
	defer func() { writer.SetSanitizeStrings(oldSanitize) }()

	writer.SetSanitizeStrings(true)
	if err = writer.AddShort(s.SessionId); err != nil {
		return
	}
	writer.AddBreak()
	for _, f := range s.fields() {
		if err = writer.AddString(*f); err != nil {
			return
		}
		writer.AddBreak()
	}
	return
}

func (s *AccountCreatePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	reader.SetIsChunked(true)
	if s.SessionId, err = reader.GetShort(); err != nil {
		return
	}
	if err = reader.NextChunk(); err != nil {
		return
	}
	for _, f := range s.fields() {
		if *f, err = reader.GetString(); err != nil {
			return
		}
		if err = reader.NextChunk(); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}
