package field

import "sync"

// Shared parameter sets for the curves and hashing fields used across the
// module. Each is derived once on first use and safe for concurrent reads.

var (
	goldilocksOnce sync.Once
	goldilocks     *Params64

	babyBearOnce sync.Once
	babyBear     *Params64

	bn254Once sync.Once
	bn254     *Params256

	bls12381Once sync.Once
	bls12381     *Params256

	pallasOnce sync.Once
	pallas     *Params256

	vestaOnce sync.Once
	vesta     *Params256
)

// Goldilocks returns the parameters of the field with modulus
// 2^64 - 2^32 + 1.
func Goldilocks() *Params64 {
	goldilocksOnce.Do(func() {
		goldilocks = NewParams64("18446744069414584321", "7")
	})
	return goldilocks
}

// BabyBear returns the parameters of the field with modulus
// 2^31 - 2^27 + 1.
func BabyBear() *Params64 {
	babyBearOnce.Do(func() {
		babyBear = NewParams64("2013265921", "31")
	})
	return babyBear
}

// BN254 returns the parameters of the BN254 scalar field.
func BN254() *Params256 {
	bn254Once.Do(func() {
		bn254 = NewParams256(
			"21888242871839275222246405745257275088548364400416034343698204186575808495617",
			"7",
		)
	})
	return bn254
}

// BLS12381 returns the parameters of the BLS12-381 scalar field.
func BLS12381() *Params256 {
	bls12381Once.Do(func() {
		bls12381 = NewParams256(
			"52435875175126190479447740508185965837690552500527637822603658699938581184513",
			"7",
		)
	})
	return bls12381
}

// Pallas returns the parameters of the Pallas base field.
func Pallas() *Params256 {
	pallasOnce.Do(func() {
		pallas = NewParams256(
			"28948022309329048855892746252171976963363056481941560715954676764349967630337",
			"5",
		)
	})
	return pallas
}

// Vesta returns the parameters of the Vesta base field.
func Vesta() *Params256 {
	vestaOnce.Do(func() {
		vesta = NewParams256(
			"28948022309329048855892746252171976963363056481941647379679742748393362948097",
			"5",
		)
	})
	return vesta
}
