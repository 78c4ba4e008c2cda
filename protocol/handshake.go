package protocol

import "github.com/huoshan017/eonet/data"

// InitReply is the first byte of the server's init reply.
type InitReply int

const (
	InitReplyOutOfDate InitReply = 1
	InitReplyOk        InitReply = 2
	InitReplyBanned    InitReply = 3
)

// Version is a client version encoded as three chars.
type Version struct {
	byteSize int

	Major int
	Minor int
	Patch int
}

func (s *Version) ByteSize() int {
	return s.byteSize
}

func (s *Version) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(s.Major); err != nil {
		return
	}
	if err = writer.AddChar(s.Minor); err != nil {
		return
	}
	err = writer.AddChar(s.Patch)
	return
}

func (s *Version) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Major, err = reader.GetChar(); err != nil {
		return
	}
	if s.Minor, err = reader.GetChar(); err != nil {
		return
	}
	if s.Patch, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// InitOk carries what the client needs to start the encrypted session.
// Seq1 and Seq2 encode the sequence start; see packet.InitSequenceStart.
type InitOk struct {
	byteSize int

	Seq1                     int
	Seq2                     int
	ServerEncryptionMultiple int
	ClientEncryptionMultiple int
	PlayerId                 int
	ChallengeResponse        int
}

func (s *InitOk) ByteSize() int {
	return s.byteSize
}

func (s *InitOk) Serialize(writer *data.EoWriter) (err error) {
	for _, b := range []int{s.Seq1, s.Seq2, s.ServerEncryptionMultiple, s.ClientEncryptionMultiple} {
		if err = writer.AddByte(b); err != nil {
			return
		}
	}
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	err = writer.AddThree(s.ChallengeResponse)
	return
}

func (s *InitOk) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	for _, b := range []*int{&s.Seq1, &s.Seq2, &s.ServerEncryptionMultiple, &s.ClientEncryptionMultiple} {
		if *b, err = reader.GetByte(); err != nil {
			return
		}
	}
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	if s.ChallengeResponse, err = reader.GetThree(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
