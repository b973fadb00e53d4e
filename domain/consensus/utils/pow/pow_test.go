package pow

import (
	"testing"

	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
)

func TestHashToBig(t *testing.T) {
	var array [externalapi.DomainHashSize]byte
	array[0] = 0x01
	array[1] = 0x02
	hash := externalapi.NewDomainHashFromByteArray(&array)

	if HashToBig(hash).Int64() != 0x0201 {
		t.Fatalf("HashToBig: got %x, want 201", HashToBig(hash))
	}
	if array := hash.ByteArray(); array[0] != 0x01 {
		t.Fatalf("HashToBig modified the hash")
	}
}

func TestCheckProofOfWorkByBits(t *testing.T) {
	small := externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{0xff})

	var highArray [externalapi.DomainHashSize]byte
	highArray[externalapi.DomainHashSize-1] = 0x7f
	high := externalapi.NewDomainHashFromByteArray(&highArray)

	var maxArray [externalapi.DomainHashSize]byte
	for i := range maxArray {
		maxArray[i] = 0xff
	}
	max := externalapi.NewDomainHashFromByteArray(&maxArray)

	tests := []struct {
		name     string
		hash     *externalapi.DomainHash
		bits     uint32
		expected bool
	}{
		{"small hash, regtest target", small, 0x207fffff, true},
		{"high hash, regtest target", high, 0x207fffff, true},
		{"max hash, regtest target", max, 0x207fffff, false},
		{"small hash, tiny target", small, 0x0300ffff, true},
		{"small hash, tinier target", small, 0x030000fe, false},
		{"zero target", small, 0x00000000, false},
		{"negative target", small, 0x04923456, false},
	}
	for _, test := range tests {
		if result := CheckProofOfWorkByBits(test.hash, test.bits); result != test.expected {
			t.Errorf("%s: got %t, want %t", test.name, result, test.expected)
		}
	}
}
