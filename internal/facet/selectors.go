package facet

import "github.com/birthday-onchain/boc-api/internal/chain"

// Selectors, derived from the canonical signature of each operation. The
// router keys its dispatch table on these.
var (
	// users
	SelCreateUser           = chain.Sel("createUser(string,string,string,uint8,string)")
	SelUpdateUser           = chain.Sel("updateUser(string,string,uint8,string)")
	SelGetUser              = chain.Sel("getUser(address)")
	SelGetAllUsers          = chain.Sel("getAllUsers()")
	SelGetUserMessages      = chain.Sel("getUserMessages(address)")
	SelGetUserNotifications = chain.Sel("getUserNotifications(address)")
	SelGetUserGifts         = chain.Sel("getUserGifts(address)")
	SelGetUserBirthdays     = chain.Sel("getUserBirthdays(address)")
	SelGetUserGoal          = chain.Sel("getUserGoal(address)")
	SelGetUserSubscription  = chain.Sel("getUserSubscription(address)")
	SelGetUserBalance       = chain.Sel("getUserBalance(address)")
	SelGetUserTokenBalance  = chain.Sel("getUserTokenBalance(address)")
	SelBocWithdrawEther     = chain.Sel("bocWithdrawEther()")

	// birthdays
	SelCreateBirthday        = chain.Sel("createBirthday(uint256)")
	SelCreateBirthdayAndGoal = chain.Sel("createBirthdayAndGoal(uint256,string,uint256)")
	SelCreateTimeline        = chain.Sel("createTimeline(uint256)")
	SelCreateGoal            = chain.Sel("createGoal(uint256,string,uint256)")
	SelUpdateGoal            = chain.Sel("updateGoal(uint256,string,uint256)")
	SelUserWithdrawEther     = chain.Sel("userWithdrawEther()")
	SelUserWithdrawToken     = chain.Sel("userWithdrawToken()")

	// activities
	SelSendMessage       = chain.Sel("sendMessage(address,string)")
	SelSendEtherAsGift   = chain.Sel("sendEtherAsGift(address)")
	SelSendTokenAsGift   = chain.Sel("sendTokenAsGift(address,uint256)")
	SelCheckBalance      = chain.Sel("checkBalance()")
	SelCheckTokenBalance = chain.Sel("checkTokenBalance()")

	// subscribe
	SelSubscribeWithEther = chain.Sel("subscribeWithEther()")
	SelSubscribeWithToken = chain.Sel("subscribeWithToken(uint256)")
	SelGetSubscribedUsers = chain.Sel("getSubscribedUsers()")

	// platform
	SelGetCompleteUser = chain.Sel("getCompleteUser(address)")

	// access
	SelOwner             = chain.Sel("owner()")
	SelTransferOwnership = chain.Sel("transferOwnership(address)")

	// init
	SelInit = chain.Sel("init(address,address,uint8)")
)
