package lottery

// BasisPointsPerUnit converts the configured fee fraction into integer
// basis points for exact prize arithmetic.
const BasisPointsPerUnit = 10000

// PayoutMemo is attached to the winner's payout invoice.
const PayoutMemo = "Lottery Prize"

// AnnouncementContent is the round announcement note participants zap.
const AnnouncementContent = `Welcome to the Most Exciting Nostr Lottery: LUCKSTR!

Zapping this note will make you join the ⚡ PRIZE POOL!

The more sats you zap to this note, the higher your chances of winning!

This is a fully automated and transparent daily lottery!
Check out older notes for past lottery rounds and winners!

Important rules and details:
Every single transaction, in and out, can be tracked by its zap event of kind 9735.
The winner will be chosen at random using an open-source and fair algorithm.
The winner will be announced the following day.
95 percent of total collected sats will be automatically sent back to the winner` + "`" + `s Lightning Address (lud16) available in their profile metadata (make sure you have the right setup before participating)
And 5 percent of total collected sats will be kept as a fee and will be dedicated to the development of Nostr apps and tools.
Be careful not to zap older notes, as they will not be considered for this lottery.

Good luck and have fun!`

// WinnerContentFormat composes the result note: npub, prize, participant
// count, pool total.
const WinnerContentFormat = "Congrats nostr:%s You Are The Lucky Winner For This Round of LUCKSTR LOTTERY!" +
	"\nPrize Amount (Satoshis): %d" +
	"\n\nTotal Participants: %d" +
	"\nTotal Zaps (Satoshis): %d"

// Error context strings for wrapped errors
const (
	ErrContextFailedToOpenSession   = "failed to open relay session"
	ErrContextFailedToCheckRound    = "failed to check round record"
	ErrContextFailedToFetchReceipts = "failed to fetch zap receipts"
	ErrContextFailedToSeedDraw      = "failed to seed draw"
	ErrContextFailedToClaimRound    = "failed to claim round"
	ErrContextRunCancelled          = "run cancelled before dispatch"
)

// Log message constants
const (
	LogMsgRoundAnnounced        = "Round announcement published"
	LogMsgDroppingReceipt       = "Dropping receipt with malformed zap request payload"
	LogMsgRoundLocated          = "Active round located"
	LogMsgDrawCompleted         = "Draw completed and prize dispatched"
	LogMsgDrawFailed            = "Draw run failed"
	LogMsgDrawFallback          = "Weighted draw exhausted without winner, fell back to first contribution"
	LogMsgFailedToRecordRound   = "Failed to record round completion after dispatch"
	LogMsgFailedToPublishResult = "Failed to publish result note after payout"
)
