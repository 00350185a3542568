//go:build js && wasm

package main

import (
	"syscall/js"

	"classroom/internal/adapter/export"
	"classroom/internal/domain"
	"classroom/internal/usecase"
)

var (
	coldCall   *usecase.ColdCallUseCase
	breakout   *usecase.BreakoutUseCase
	peerReview *usecase.PeerReviewUseCase
	preference *usecase.PreferenceUseCase
)

func init() {
	coldCall = usecase.NewColdCallUseCase(nil)
	breakout = usecase.NewBreakoutUseCase(nil)
	peerReview = usecase.NewPeerReviewUseCase(nil)
	preference = usecase.NewPreferenceUseCase(nil)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("classroomColdCall", js.FuncOf(runColdCall))
	js.Global().Set("classroomBreakout", js.FuncOf(runBreakout))
	js.Global().Set("classroomPeerReview", js.FuncOf(runPeerReview))
	js.Global().Set("classroomPreferenceGroups", js.FuncOf(runPreferenceGroups))

	<-c
}

// classroomColdCall(roster, [sampleSize], [seed], [includeExcused])
func runColdCall(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: classroomColdCall(roster, [sampleSize], [seed], [includeExcused])")
	}

	res, err := coldCall.Run(domain.ColdCallRequest{
		Roster:         args[0].String(),
		SampleSize:     stringArg(args, 1),
		Seed:           stringArg(args, 2),
		IncludeExcused: len(args) > 3 && args[3].Truthy(),
	})
	if err != nil {
		return makeResult(export.ErrorPayload(err))
	}
	return makeResult(export.ColdCallPayload(res))
}

// classroomBreakout(roster, [teamCount], [groupSize], [seed])
func runBreakout(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: classroomBreakout(roster, [teamCount], [groupSize], [seed])")
	}

	res, err := breakout.Run(domain.GroupingRequest{
		Roster:    args[0].String(),
		TeamCount: stringArg(args, 1),
		GroupSize: stringArg(args, 2),
		Seed:      stringArg(args, 3),
	})
	if err != nil {
		return makeResult(export.ErrorPayload(err))
	}
	return makeResult(export.GroupingPayload(res))
}

// classroomPeerReview(roster, [seed])
func runPeerReview(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: classroomPeerReview(roster, [seed])")
	}

	res, err := peerReview.Run(domain.PeerReviewRequest{
		Roster: args[0].String(),
		Seed:   stringArg(args, 1),
	})
	if err != nil {
		return makeResult(export.ErrorPayload(err))
	}
	return makeResult(export.PeerReviewPayload(res))
}

// classroomPreferenceGroups(roster, [teamCount], [groupSize], [delimiters], [seed])
func runPreferenceGroups(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: classroomPreferenceGroups(roster, [teamCount], [groupSize], [delimiters], [seed])")
	}

	res, err := preference.Run(domain.GroupingRequest{
		Roster:     args[0].String(),
		TeamCount:  stringArg(args, 1),
		GroupSize:  stringArg(args, 2),
		Delimiters: stringArg(args, 3),
		Seed:       stringArg(args, 4),
	})
	if err != nil {
		return makeResult(export.ErrorPayload(err))
	}
	return makeResult(export.GroupingPayload(res))
}

// stringArg returns args[i] as text, or "" when it is missing, null or undefined.
func stringArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].IsNull() || args[i].IsUndefined() {
		return ""
	}
	if args[i].Type() == js.TypeNumber {
		return js.Global().Get("String").Invoke(args[i]).String()
	}
	return args[i].String()
}

func makeError(msg string) interface{} {
	return makeResult(export.Payload{Error: msg})
}

func makeResult(p export.Payload) interface{} {
	out, err := p.JSON()
	if err != nil {
		return `{"error":"encoding failed"}`
	}
	return out
}
