package main

import "strings"

// EventKeyKind discriminates the subscription classes an observer can
// ask for.
type EventKeyKind int

const (
	EventKeyAny EventKeyKind = iota
	EventKeySTX
	EventKeyAsset
	EventKeySmartContract
)

// EventKeyType is one parsed subscription key. Asset is set for
// EventKeyAsset; Contract and EventName for EventKeySmartContract.
type EventKeyType struct {
	Kind      EventKeyKind
	Asset     AssetIdentifier
	Contract  QualifiedContractIdentifier
	EventName string
}

// parseEventKey classifies a raw subscription key:
//
//	"*"                      any event
//	"stx"                    STX transfer events
//	addr.contract.asset      events for one asset class
//	addr.contract::event     one named smart contract event
//
// The bool reports whether the key matched any of the forms.
func parseEventKey(raw string) (EventKeyType, bool) {
	if raw == "*" {
		return EventKeyType{Kind: EventKeyAny}, true
	}
	if raw == "stx" {
		return EventKeyType{Kind: EventKeySTX}, true
	}
	comps := strings.Split(raw, "::")
	switch len(comps) {
	case 1:
		parts := strings.Split(comps[0], ".")
		if len(parts) != 3 {
			return EventKeyType{}, false
		}
		issuer, err := parseStandardPrincipal(parts[0])
		if err != nil || !validClarityName(parts[1]) || !validClarityName(parts[2]) {
			return EventKeyType{}, false
		}
		return EventKeyType{
			Kind: EventKeyAsset,
			Asset: AssetIdentifier{
				Contract:  QualifiedContractIdentifier{Issuer: issuer, Name: parts[1]},
				AssetName: parts[2],
			},
		}, true
	case 2:
		contract, err := parseContractIdentifier(comps[0])
		if err != nil {
			return EventKeyType{}, false
		}
		return EventKeyType{
			Kind:      EventKeySmartContract,
			Contract:  contract,
			EventName: comps[1],
		}, true
	default:
		return EventKeyType{}, false
	}
}
