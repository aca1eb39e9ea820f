// Package marshalling serializes key share packages and public key packages
// so callers can store or distribute them. Key share packages use a
// fixed-size binary layout; public key packages use the dedis protobuf
// reflect codec because their roster is variable-length.
package marshalling

import (
	"encoding/binary"
	"math"
	"reflect"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/protobuf"
	"golang.org/x/xerrors"

	"github.com/j-s-n/ironfish/multisig"
	"github.com/j-s-n/ironfish/participant"
)

var Uint32Size = 4
var Uint16Size = 2

// MarshalKeySharePackage encodes a key share package as
// identifier | min signers | signing share | verifying share | group key.
func MarshalKeySharePackage(pkg *multisig.KeySharePackage) ([]byte, error) {
	signingBytes, err := pkg.SigningShare.MarshalBinary()
	if err != nil {
		return nil, err
	}
	verifyingBytes, err := pkg.VerifyingShare.MarshalBinary()
	if err != nil {
		return nil, err
	}
	groupBytes, err := pkg.GroupPublicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}

	bs := make([]byte, Uint32Size+Uint16Size+len(signingBytes)+len(verifyingBytes)+len(groupBytes))
	binary.BigEndian.PutUint32(bs[:Uint32Size], uint32(pkg.Identifier))
	binary.BigEndian.PutUint16(bs[Uint32Size:Uint32Size+Uint16Size], pkg.MinSigners)
	off := Uint32Size + Uint16Size
	off += copy(bs[off:], signingBytes)
	off += copy(bs[off:], verifyingBytes)
	copy(bs[off:], groupBytes)
	return bs, nil
}

func UnmarshalKeySharePackage(bs []byte, g kyber.Group) (*multisig.KeySharePackage, error) {
	scalarSize := g.Scalar().MarshalSize()
	pointSize := g.Point().MarshalSize()
	want := Uint32Size + Uint16Size + scalarSize + 2*pointSize
	if len(bs) != want {
		return nil, xerrors.Errorf("key share package must be %d bytes, got %d", want, len(bs))
	}

	identifier := binary.BigEndian.Uint32(bs[:Uint32Size])
	minSigners := binary.BigEndian.Uint16(bs[Uint32Size : Uint32Size+Uint16Size])
	off := Uint32Size + Uint16Size

	signing := g.Scalar()
	if err := signing.UnmarshalBinary(bs[off : off+scalarSize]); err != nil {
		return nil, xerrors.Errorf("decode signing share: %w", err)
	}
	off += scalarSize

	verifying := g.Point()
	if err := verifying.UnmarshalBinary(bs[off : off+pointSize]); err != nil {
		return nil, xerrors.Errorf("decode verifying share: %w", err)
	}
	off += pointSize

	group := g.Point()
	if err := group.UnmarshalBinary(bs[off : off+pointSize]); err != nil {
		return nil, xerrors.Errorf("decode group public key: %w", err)
	}

	return &multisig.KeySharePackage{
		Identifier:     participant.Identifier(identifier),
		SigningShare:   signing,
		VerifyingShare: verifying,
		GroupPublicKey: group,
		MinSigners:     minSigners,
	}, nil
}

// publicKeyPackageWire is the protobuf shape of a public key package.
// Identities and VerifyingShares are aligned by index.
type publicKeyPackageWire struct {
	MinSigners      uint32
	GroupPublicKey  kyber.Point
	Identities      [][]byte
	VerifyingShares []kyber.Point
}

func MarshalPublicKeyPackage(pkg *multisig.PublicKeyPackage) ([]byte, error) {
	wire := &publicKeyPackageWire{
		MinSigners:      uint32(pkg.MinSigners),
		GroupPublicKey:  pkg.GroupPublicKey,
		Identities:      make([][]byte, len(pkg.Identities)),
		VerifyingShares: make([]kyber.Point, len(pkg.Identities)),
	}
	for i, identity := range pkg.Identities {
		wire.Identities[i] = identity.Bytes()
		vs, ok := pkg.VerifyingShares[identity]
		if !ok {
			return nil, xerrors.Errorf("identity %s has no verifying share", identity)
		}
		wire.VerifyingShares[i] = vs
	}
	return protobuf.Encode(wire)
}

func UnmarshalPublicKeyPackage(bs []byte, g kyber.Group) (*multisig.PublicKeyPackage, error) {
	cons := protobuf.Constructors{
		reflect.TypeOf((*kyber.Point)(nil)).Elem(): func() interface{} { return g.Point() },
	}

	wire := &publicKeyPackageWire{}
	if err := protobuf.DecodeWithConstructors(bs, wire, cons); err != nil {
		return nil, xerrors.Errorf("decode public key package: %w", err)
	}
	if wire.GroupPublicKey == nil {
		return nil, xerrors.New("public key package has no group public key")
	}
	if len(wire.Identities) != len(wire.VerifyingShares) {
		return nil, xerrors.Errorf("%d identities but %d verifying shares",
			len(wire.Identities), len(wire.VerifyingShares))
	}
	if wire.MinSigners > math.MaxUint16 {
		return nil, xerrors.Errorf("min signers %d exceeds the 16-bit count", wire.MinSigners)
	}

	identities := make([]participant.Identity, len(wire.Identities))
	verifying := make(map[participant.Identity]kyber.Point, len(wire.Identities))
	for i, idBytes := range wire.Identities {
		identity, err := participant.IdentityFromBytes(idBytes)
		if err != nil {
			return nil, err
		}
		identities[i] = identity
		verifying[identity] = wire.VerifyingShares[i]
	}

	return &multisig.PublicKeyPackage{
		GroupPublicKey:  wire.GroupPublicKey,
		Identities:      identities,
		VerifyingShares: verifying,
		MinSigners:      uint16(wire.MinSigners),
	}, nil
}
