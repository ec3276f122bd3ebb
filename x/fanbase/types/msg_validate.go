package types

import (
	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs the stateless checks of each msg. Signer and receiver
// addresses are decoded by the msg server with the host's address codec.

func (msg *MsgCreateAccount) ValidateBasic() error {
	return ValidateCreatorId(msg.CreatorId)
}

func (msg *MsgDropAccount) ValidateBasic() error {
	return ValidateCreatorId(msg.CreatorId)
}

func (msg *MsgMint) ValidateBasic() error {
	if err := ValidateCreatorId(msg.CreatorId); err != nil {
		return err
	}
	if err := validateAmount("price", msg.Price); err != nil {
		return err
	}
	return msg.Metadata.Validate()
}

func (msg *MsgLaunchGift) ValidateBasic() error {
	return ValidateCreatorId(msg.CreatorId)
}

func (msg *MsgLaunchBuy) ValidateBasic() error {
	return validateAmount("bid", msg.Bid)
}

func (msg *MsgBuy) ValidateBasic() error {
	return validateAmount("bid", msg.Bid)
}

func (msg *MsgList) ValidateBasic() error {
	return validatePositivePrice(msg.Price)
}

func (msg *MsgSetLaunchPrice) ValidateBasic() error {
	if err := ValidateCreatorId(msg.CreatorId); err != nil {
		return err
	}
	return validateAmount("price", msg.Price)
}

func (msg *MsgSetPrice) ValidateBasic() error {
	return validatePositivePrice(msg.Price)
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if err := msg.Params.Validate(); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	return nil
}

func validateAmount(field string, amt sdkmath.Int) error {
	if amt.IsNil() || amt.IsNegative() {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s must be >= 0", field)
	}
	return nil
}

func validatePositivePrice(price sdkmath.Int) error {
	if price.IsNil() || !price.IsPositive() {
		return ErrZeroPrice
	}
	return nil
}
