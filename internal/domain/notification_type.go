package domain

// NotificationType 通知类型，取值是封闭的枚举
type NotificationType string

// 订单
const (
	TypeOrderPlaced         NotificationType = "order_placed"
	TypeOrderConfirmed      NotificationType = "order_confirmed"
	TypeOrderProcessing     NotificationType = "order_processing"
	TypeOrderShipped        NotificationType = "order_shipped"
	TypeOrderOutForDelivery NotificationType = "order_out_for_delivery"
	TypeOrderDelivered      NotificationType = "order_delivered"
	TypeOrderCancelled      NotificationType = "order_cancelled"
	TypeOrderReturned       NotificationType = "order_returned"
)

// 支付
const (
	TypePaymentSuccess  NotificationType = "payment_success"
	TypePaymentFailed   NotificationType = "payment_failed"
	TypePaymentPending  NotificationType = "payment_pending"
	TypeRefundInitiated NotificationType = "refund_initiated"
	TypeRefundCompleted NotificationType = "refund_completed"
)

// 库存
const (
	TypeLowStock    NotificationType = "low_stock"
	TypeOutOfStock  NotificationType = "out_of_stock"
	TypeBackInStock NotificationType = "back_in_stock"
	TypePriceDrop   NotificationType = "price_drop"
)

// 推广者
const (
	TypeAffiliateApplicationReceived NotificationType = "affiliate_application_received"
	TypeAffiliateApproved            NotificationType = "affiliate_approved"
	TypeAffiliateRejected            NotificationType = "affiliate_rejected"
	TypeAffiliateSuspended           NotificationType = "affiliate_suspended"
	TypeCommissionEarned             NotificationType = "commission_earned"
	TypeCommissionApproved           NotificationType = "commission_approved"
	TypePayoutRequested              NotificationType = "payout_requested"
	TypePayoutProcessed              NotificationType = "payout_processed"
	TypePayoutFailed                 NotificationType = "payout_failed"
)

// 钱包
const (
	TypeWalletCredited            NotificationType = "wallet_credited"
	TypeWalletDebited             NotificationType = "wallet_debited"
	TypeWalletWithdrawalRequested NotificationType = "wallet_withdrawal_requested"
	TypeWalletWithdrawalCompleted NotificationType = "wallet_withdrawal_completed"
)

// 账号
const (
	TypeWelcome            NotificationType = "welcome"
	TypeEmailVerified      NotificationType = "email_verified"
	TypeProfileUpdated     NotificationType = "profile_updated"
	TypeAccountDeactivated NotificationType = "account_deactivated"
)

// 安全
const (
	TypePasswordChanged        NotificationType = "password_changed"
	TypePasswordResetRequested NotificationType = "password_reset_requested"
	TypeLoginAlert             NotificationType = "login_alert"
	TypeSuspiciousActivity     NotificationType = "suspicious_activity"
)

// 管理后台 / 系统
const (
	TypeNewOrderAdmin      NotificationType = "new_order_admin"
	TypeNewAffiliateAdmin  NotificationType = "new_affiliate_admin"
	TypePayoutRequestAdmin NotificationType = "payout_request_admin"
	TypeLowStockAdmin      NotificationType = "low_stock_admin"
	TypeSystemAlert        NotificationType = "system_alert"
	TypeSystemMaintenance  NotificationType = "system_maintenance"
)

// 营销
const (
	TypePromotion       NotificationType = "promotion"
	TypeNewArrival      NotificationType = "new_arrival"
	TypeCouponAvailable NotificationType = "coupon_available"
	TypeAbandonedCart   NotificationType = "abandoned_cart"
	TypeBroadcast       NotificationType = "broadcast"
)

var allNotificationTypes = []NotificationType{
	TypeOrderPlaced, TypeOrderConfirmed, TypeOrderProcessing, TypeOrderShipped,
	TypeOrderOutForDelivery, TypeOrderDelivered, TypeOrderCancelled, TypeOrderReturned,

	TypePaymentSuccess, TypePaymentFailed, TypePaymentPending, TypeRefundInitiated, TypeRefundCompleted,

	TypeLowStock, TypeOutOfStock, TypeBackInStock, TypePriceDrop,

	TypeAffiliateApplicationReceived, TypeAffiliateApproved, TypeAffiliateRejected, TypeAffiliateSuspended,
	TypeCommissionEarned, TypeCommissionApproved, TypePayoutRequested, TypePayoutProcessed, TypePayoutFailed,

	TypeWalletCredited, TypeWalletDebited, TypeWalletWithdrawalRequested, TypeWalletWithdrawalCompleted,

	TypeWelcome, TypeEmailVerified, TypeProfileUpdated, TypeAccountDeactivated,

	TypePasswordChanged, TypePasswordResetRequested, TypeLoginAlert, TypeSuspiciousActivity,

	TypeNewOrderAdmin, TypeNewAffiliateAdmin, TypePayoutRequestAdmin, TypeLowStockAdmin,
	TypeSystemAlert, TypeSystemMaintenance,

	TypePromotion, TypeNewArrival, TypeCouponAvailable, TypeAbandonedCart, TypeBroadcast,
}

var notificationTypeSet = func() map[NotificationType]struct{} {
	res := make(map[NotificationType]struct{}, len(allNotificationTypes))
	for _, t := range allNotificationTypes {
		res[t] = struct{}{}
	}
	return res
}()

// AllNotificationTypes 返回全部通知类型，调用方可以随意修改返回值
func AllNotificationTypes() []NotificationType {
	res := make([]NotificationType, len(allNotificationTypes))
	copy(res, allNotificationTypes)
	return res
}

func (t NotificationType) Valid() bool {
	_, ok := notificationTypeSet[t]
	return ok
}

func (t NotificationType) String() string {
	return string(t)
}
