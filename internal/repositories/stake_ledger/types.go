package stake_ledger

type DepositInput struct {
	DuelID  uint64
	Account string
	Amount  uint64
}

type GetPotInput struct {
	DuelID uint64
}

type PayoutInput struct {
	DuelID  uint64
	Account string
}

type PayoutOutput struct {
	// Amount is the full pot that was transferred
	Amount uint64
}

type PayoutSplitInput struct {
	DuelID   uint64
	AccountA string
	AccountB string
}

type PayoutSplitOutput struct {
	// AmountEach is the half-pot transferred to each account
	AmountEach uint64
}

type GetBalanceInput struct {
	Account string
}
