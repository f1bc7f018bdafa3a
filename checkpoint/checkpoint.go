// Package checkpoint produces and verifies COSE Sign1 commitments to a
// merkle tree root.
//
// A checkpoint binds the tree length, the root hash and a signing
// timestamp. The published message carries the root *detached*: it is
// covered by the signature but removed from the payload, so a verifier is
// forced to reproduce the root independently, typically from an inclusion
// proof, rather than trusting the value in the envelope.
package checkpoint

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

var ErrVerifyCheckpoint = errors.New("checkpoint verification failed")

// Checkpoint is the signed payload. TreeLen is the full node count of the
// committed tree (2n-1 for n leaves), which fixes the tree shape; Root is
// the hash at node index 0. Timestamp is unix milliseconds at signing time,
// allowing the same root to be re-signed.
type Checkpoint struct {
	TreeLen   uint64 `cbor:"1,keyasint"`
	Root      []byte `cbor:"2,keyasint,omitempty"`
	Timestamp int64  `cbor:"3,keyasint"`
}

// Sign signs the checkpoint and returns the encoded COSE Sign1 message.
// The signature covers the payload including Root, but the encoded message
// carries the payload with Root removed.
//
// keyIdentifier is placed in the protected kid header so verifiers can
// locate the right public key.
func Sign(signer cose.Signer, keyIdentifier string, cp Checkpoint) ([]byte, error) {
	if len(cp.Root) == 0 {
		return nil, errors.New("cannot sign a checkpoint without a root")
	}

	payload, err := cbor.Marshal(cp)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelKeyID: []byte(keyIdentifier),
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, err
	}

	// Detach the root so that verifiers must obtain it from a proof.
	cp.Root = nil
	if msg.Payload, err = cbor.Marshal(cp); err != nil {
		return nil, err
	}

	return msg.MarshalCBOR()
}

// Decode parses an encoded checkpoint message without verifying it. The
// returned Checkpoint has no Root; supply one to Verify to complete
// verification.
func Decode(data []byte) (*cose.Sign1Message, Checkpoint, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(data); err != nil {
		return nil, Checkpoint{}, err
	}

	var cp Checkpoint
	if err := cbor.Unmarshal(msg.Payload, &cp); err != nil {
		return nil, Checkpoint{}, err
	}
	return &msg, cp, nil
}

// Verify reinstates root into the decoded checkpoint and checks the
// signature. It succeeds only if root is byte for byte the root that was
// present when the checkpoint was signed.
func Verify(msg *cose.Sign1Message, cp Checkpoint, root []byte, verifier cose.Verifier) error {
	cp.Root = root

	payload, err := cbor.Marshal(cp)
	if err != nil {
		return err
	}
	msg.Payload = payload

	if err := msg.Verify(nil, verifier); err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyCheckpoint, err)
	}
	return nil
}
