package shuffle

import (
	"encoding/json"
	"math/big"

	"github.com/shuffleproof/bgshuffle/group"
)

func marshalPoint(e group.Element) (json.RawMessage, error) {
	return e.MarshalJSON()
}

func marshalPoints(pts []group.Element) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(pts))
	for i, p := range pts {
		raw, err := marshalPoint(p)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return out, nil
}

func unmarshalPoint(gp group.Group, raw json.RawMessage) (group.Element, error) {
	e := gp.Element()
	if err := e.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return e, nil
}

func unmarshalPoints(gp group.Group, raws []json.RawMessage) ([]group.Element, error) {
	out := make([]group.Element, len(raws))
	for i, raw := range raws {
		p, err := unmarshalPoint(gp, raw)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

type ipaProofJSON struct {
	R, S       json.RawMessage
	Bl1, Bl2   *big.Int
	BL, BR     []json.RawMessage
	CL, CR     []json.RawMessage
	TipB, TipC *big.Int
}

type gprodProofJSON struct {
	B   json.RawMessage
	Bl  *big.Int
	IPA ipaProofJSON
}

type sameExpProofJSON struct {
	Bt, Bu     json.RawMessage
	Zr, Zt, Zu *big.Int
}

type multiExpProofJSON struct {
	R, TBl, UBl            json.RawMessage
	TL, TR, UL, UR, CL, CR []json.RawMessage
	TipA                   *big.Int
}

type shuffleProofJSON struct {
	M, A, T, U json.RawMessage
	GProd      gprodProofJSON
	SameExp    sameExpProofJSON
	MultiExp   multiExpProofJSON
}

func ipaToJSON(p *IPAProof) (ipaProofJSON, error) {
	var out ipaProofJSON
	var err error
	if out.R, err = marshalPoint(p.R); err != nil {
		return out, err
	}
	if out.S, err = marshalPoint(p.S); err != nil {
		return out, err
	}
	if out.BL, err = marshalPoints(p.BL); err != nil {
		return out, err
	}
	if out.BR, err = marshalPoints(p.BR); err != nil {
		return out, err
	}
	if out.CL, err = marshalPoints(p.CL); err != nil {
		return out, err
	}
	if out.CR, err = marshalPoints(p.CR); err != nil {
		return out, err
	}
	out.Bl1, out.Bl2, out.TipB, out.TipC = p.Bl1, p.Bl2, p.TipB, p.TipC
	return out, nil
}

func ipaFromJSON(gp group.Group, j ipaProofJSON) (*IPAProof, error) {
	R, err := unmarshalPoint(gp, j.R)
	if err != nil {
		return nil, err
	}
	S, err := unmarshalPoint(gp, j.S)
	if err != nil {
		return nil, err
	}
	BL, err := unmarshalPoints(gp, j.BL)
	if err != nil {
		return nil, err
	}
	BR, err := unmarshalPoints(gp, j.BR)
	if err != nil {
		return nil, err
	}
	CL, err := unmarshalPoints(gp, j.CL)
	if err != nil {
		return nil, err
	}
	CR, err := unmarshalPoints(gp, j.CR)
	if err != nil {
		return nil, err
	}
	return &IPAProof{
		R: R, S: S, Bl1: j.Bl1, Bl2: j.Bl2,
		BL: BL, BR: BR, CL: CL, CR: CR,
		TipB: j.TipB, TipC: j.TipC,
	}, nil
}

// MarshalJSON encodes proof for transport or storage, using each
// group.Element's own MarshalJSON for curve points.
func (proof *ShuffleProof) MarshalJSON() ([]byte, error) {
	var out shuffleProofJSON
	var err error
	if out.M, err = marshalPoint(proof.M); err != nil {
		return nil, err
	}
	if out.A, err = marshalPoint(proof.A); err != nil {
		return nil, err
	}
	if out.T, err = marshalPoint(proof.T); err != nil {
		return nil, err
	}
	if out.U, err = marshalPoint(proof.U); err != nil {
		return nil, err
	}

	gprodIPA, err := ipaToJSON(proof.GProd.IPA)
	if err != nil {
		return nil, err
	}
	if out.GProd.B, err = marshalPoint(proof.GProd.B); err != nil {
		return nil, err
	}
	out.GProd.Bl = proof.GProd.Bl
	out.GProd.IPA = gprodIPA

	if out.SameExp.Bt, err = marshalPoint(proof.SameExp.Bt); err != nil {
		return nil, err
	}
	if out.SameExp.Bu, err = marshalPoint(proof.SameExp.Bu); err != nil {
		return nil, err
	}
	out.SameExp.Zr, out.SameExp.Zt, out.SameExp.Zu = proof.SameExp.Zr, proof.SameExp.Zt, proof.SameExp.Zu

	if out.MultiExp.R, err = marshalPoint(proof.MultiExp.R); err != nil {
		return nil, err
	}
	if out.MultiExp.TBl, err = marshalPoint(proof.MultiExp.TBl); err != nil {
		return nil, err
	}
	if out.MultiExp.UBl, err = marshalPoint(proof.MultiExp.UBl); err != nil {
		return nil, err
	}
	if out.MultiExp.TL, err = marshalPoints(proof.MultiExp.TL); err != nil {
		return nil, err
	}
	if out.MultiExp.TR, err = marshalPoints(proof.MultiExp.TR); err != nil {
		return nil, err
	}
	if out.MultiExp.UL, err = marshalPoints(proof.MultiExp.UL); err != nil {
		return nil, err
	}
	if out.MultiExp.UR, err = marshalPoints(proof.MultiExp.UR); err != nil {
		return nil, err
	}
	if out.MultiExp.CL, err = marshalPoints(proof.MultiExp.CL); err != nil {
		return nil, err
	}
	if out.MultiExp.CR, err = marshalPoints(proof.MultiExp.CR); err != nil {
		return nil, err
	}
	out.MultiExp.TipA = proof.MultiExp.TipA

	return json.Marshal(out)
}

// UnmarshalShuffleProof decodes a proof previously produced by
// ShuffleProof.MarshalJSON, reconstructing curve points against gp.
func UnmarshalShuffleProof(b []byte, gp group.Group) (*ShuffleProof, error) {
	var in shuffleProofJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, err
	}

	M, err := unmarshalPoint(gp, in.M)
	if err != nil {
		return nil, err
	}
	A, err := unmarshalPoint(gp, in.A)
	if err != nil {
		return nil, err
	}
	T, err := unmarshalPoint(gp, in.T)
	if err != nil {
		return nil, err
	}
	U, err := unmarshalPoint(gp, in.U)
	if err != nil {
		return nil, err
	}

	gprodB, err := unmarshalPoint(gp, in.GProd.B)
	if err != nil {
		return nil, err
	}
	gprodIPA, err := ipaFromJSON(gp, in.GProd.IPA)
	if err != nil {
		return nil, err
	}
	gprod := &GrandProductProof{B: gprodB, Bl: in.GProd.Bl, IPA: gprodIPA}

	sameExpBt, err := unmarshalPoint(gp, in.SameExp.Bt)
	if err != nil {
		return nil, err
	}
	sameExpBu, err := unmarshalPoint(gp, in.SameExp.Bu)
	if err != nil {
		return nil, err
	}
	sameExp := &SameExponentProof{
		Bt: sameExpBt, Bu: sameExpBu,
		Zr: in.SameExp.Zr, Zt: in.SameExp.Zt, Zu: in.SameExp.Zu,
	}

	meR, err := unmarshalPoint(gp, in.MultiExp.R)
	if err != nil {
		return nil, err
	}
	meTBl, err := unmarshalPoint(gp, in.MultiExp.TBl)
	if err != nil {
		return nil, err
	}
	meUBl, err := unmarshalPoint(gp, in.MultiExp.UBl)
	if err != nil {
		return nil, err
	}
	meTL, err := unmarshalPoints(gp, in.MultiExp.TL)
	if err != nil {
		return nil, err
	}
	meTR, err := unmarshalPoints(gp, in.MultiExp.TR)
	if err != nil {
		return nil, err
	}
	meUL, err := unmarshalPoints(gp, in.MultiExp.UL)
	if err != nil {
		return nil, err
	}
	meUR, err := unmarshalPoints(gp, in.MultiExp.UR)
	if err != nil {
		return nil, err
	}
	meCL, err := unmarshalPoints(gp, in.MultiExp.CL)
	if err != nil {
		return nil, err
	}
	meCR, err := unmarshalPoints(gp, in.MultiExp.CR)
	if err != nil {
		return nil, err
	}
	multiExp := &MultiExpProof{
		R: meR, TBl: meTBl, UBl: meUBl,
		TL: meTL, TR: meTR, UL: meUL, UR: meUR, CL: meCL, CR: meCR,
		TipA: in.MultiExp.TipA,
	}

	return &ShuffleProof{
		M: M, A: A, T: T, U: U,
		GProd: gprod, SameExp: sameExp, MultiExp: multiExp,
	}, nil
}
