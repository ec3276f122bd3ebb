package cli

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"fanbase/x/fanbase/types"
)

const FlagFrom = "from"

// Host executes fanbase actions and queries against a state store.
type Host interface {
	Deliver(action string, fn func(ctx context.Context) error) (sdk.Events, error)
	Query(fn func(ctx context.Context) error) error
	FanbaseMsgServer() types.MsgServer
	FanbaseQueryServer() types.QueryServer
}

type hostKey struct{}

func WithHost(ctx context.Context, h Host) context.Context {
	return context.WithValue(ctx, hostKey{}, h)
}

func GetHost(cmd *cobra.Command) (Host, error) {
	if h, ok := cmd.Context().Value(hostKey{}).(Host); ok && h != nil {
		return h, nil
	}
	return nil, fmt.Errorf("no %s host available", types.ModuleName)
}

type txOutput struct {
	Result any        `json:"result"`
	Events sdk.Events `json:"events"`
}

// deliver runs one msg server call through the host and prints its response
// and events.
func deliver[R any](cmd *cobra.Command, action string, call func(ctx context.Context, srv types.MsgServer) (R, error)) error {
	host, err := GetHost(cmd)
	if err != nil {
		return err
	}
	var res R
	events, err := host.Deliver(action, func(ctx context.Context) error {
		var err error
		res, err = call(ctx, host.FanbaseMsgServer())
		return err
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, txOutput{Result: res, Events: events})
}

func query[R any](cmd *cobra.Command, call func(ctx context.Context, srv types.QueryServer) (R, error)) error {
	host, err := GetHost(cmd)
	if err != nil {
		return err
	}
	var res R
	if err := host.Query(func(ctx context.Context) error {
		var err error
		res, err = call(ctx, host.FanbaseQueryServer())
		return err
	}); err != nil {
		return err
	}
	return printJSON(cmd, res)
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

func parseID(name, arg string) (uint64, error) {
	id, err := cast.ToUint64E(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return id, nil
}

func parseAmount(name, arg string) (sdkmath.Int, error) {
	amt, ok := sdkmath.NewIntFromString(arg)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid %s %q", name, arg)
	}
	return amt, nil
}
