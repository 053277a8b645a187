package i18n

var arabic = Table{
	"nav": {
		"home":      "الرئيسية",
		"catalog":   "الكتالوج",
		"myAccount": "حسابي",
		"login":     "دخول",
	},
	"footer": {
		"desc":       "متجر متخصص في قطع غيار مرسيدس بنز الاصلية في مصر. ارقام OEM حقيقية واسعار منافسة.",
		"quickLinks": "روابط سريعة",
		"catalog":    "الكتالوج",
		"cart":       "السلة",
		"contact":    "تواصل معنا",
	},
	"card": {
		"addToCart":  "اضف للسلة",
		"inStock":    "متوفر",
		"outOfStock": "غير متوفر",
	},
	"catalog": {
		"searchPlaceholder": "ابحث بالاسم او رقم OEM...",
		"categories":        "التصنيفات",
		"all":               "الكل",
		"allParts":          "كل القطع",
		"sort":              "ترتيب",
		"sortName":          "الاسم",
		"sortPriceAsc":      "السعر: الاقل",
		"sortPriceDesc":     "السعر: الاعلى",
		"sortNewest":        "الاحدث",
		"searching":         "جاري البحث...",
		"noResults":         "لا توجد قطع مطابقة",
		"callForPrice":      "اتصل للسعر",
	},
	"cart": {
		"title":              "سلة الطلب",
		"delivery":           "السعر شامل التوصيل للباب في كل محافظات مصر",
		"empty":              "السلة فارغة",
		"emptyDesc":          "لم تقم بإضافة أي قطعة بعد",
		"browse":             "تصفح القطع",
		"remove":             "حذف",
		"qty":                "الكمية:",
		"summary":            "ملخص الطلب",
		"partsCount":         "عدد القطع",
		"shipping":           "التوصيل",
		"shippingFree":       "مجاني",
		"total":              "الاجمالي",
		"shippingForm":       "بيانات التوصيل",
		"fullName":           "الاسم الكامل *",
		"phone":              "رقم الموبايل *",
		"phoneHint":          "يقبل 010 / 011 / 012 / 015",
		"governorate":        "المحافظة *",
		"govPlaceholder":     "اختر المحافظة",
		"area":               "المنطقة / الحي *",
		"areaPlaceholder":    "مدينة نصر، الزقازيق...",
		"address":            "العنوان بالتفصيل *",
		"addressPlaceholder": "الشارع، المبنى، الشقة",
		"notes":              "ملاحظات (اختياري)",
		"notesPlaceholder":   "أي تعليمات للمندوب...",
		"submit":             "تأكيد الطلب",
		"submitting":         "جاري الارسال...",
	},
	"auth": {
		"loginTitle":         "تسجيل الدخول",
		"loginSubtitle":      "أهلاً بعودتك، ادخل بياناتك للمتابعة",
		"signupTitle":        "انشاء حساب جديد",
		"signupSubtitle":     "سجّل الآن واحصل على تتبع طلباتك",
		"email":              "البريد الإلكتروني",
		"password":           "كلمة المرور",
		"passwordHint":       "8 أحرف على الأقل",
		"confirmPassword":    "تأكيد كلمة المرور",
		"confirmPlaceholder": "أعد كتابة كلمة المرور",
		"fullName":           "الاسم الكامل",
		"phone":              "رقم الموبايل",
		"phoneHint":          "010 / 011 / 012 / 015",
		"loginBtn":           "دخول",
		"loggingIn":          "جاري الدخول...",
		"signupBtn":          "انشاء الحساب",
		"signingUp":          "جاري الانشاء...",
		"noAccount":          "ليس لديك حساب؟",
		"createAccount":      "انشاء حساب جديد",
		"haveAccount":        "لديك حساب بالفعل؟",
		"loginLink":          "تسجيل الدخول",
		"welcome":            "مرحباً بك!",
		"accountCreated":     "تم انشاء حسابك بنجاح!",
	},
	"profile": {
		"orders":        "طلباتي",
		"settings":      "الإعدادات",
		"logout":        "خروج",
		"noOrders":      "لا توجد طلبات بعد",
		"noOrdersDesc":  "ابدأ بتصفح قطع الغيار",
		"browseCatalog": "تصفح الكتالوج",
		"editProfile":   "تعديل البيانات",
		"fullName":      "الاسم الكامل",
		"emailReadonly": "البريد الإلكتروني لا يمكن تغييره",
		"phone":         "رقم الموبايل",
		"save":          "حفظ التغييرات",
		"saving":        "جاري الحفظ...",
		"logoutSection": "تسجيل الخروج",
		"logoutDesc":    "سيتم مسح بيانات الجلسة من هذا الجهاز",
	},
	"addToCart": {
		"qty":         "الكمية:",
		"add":         "اضف للسلة",
		"unavailable": "غير متوفر",
		"whatsapp":    "تواصل عبر واتساب",
	},
	"car": {
		"title":       "ابحث بسيارتك",
		"subtitle":    "اختر موديل سيارتك للحصول على القطع المتوافقة",
		"brand":       "الماركة",
		"model":       "الموديل",
		"year":        "سنة الصنع",
		"selectBrand": "اختر الماركة",
		"selectModel": "اختر الموديل",
		"selectYear":  "اختر السنة",
		"search":      "ابحث عن القطع",
	},
	"addresses": {
		"tab":              "عناويني",
		"noAddresses":      "لا توجد عناوين محفوظة",
		"noAddressesDesc":  "سيتم حفظ عنوانك تلقائياً عند إتمام طلبك",
		"addNew":           "اضف عنوان جديد",
		"defaultBadge":     "افتراضي",
		"setDefault":       "تعيين كافتراضي",
		"delete":           "حذف",
		"label":            "اسم العنوان",
		"labelPlaceholder": "المنزل، العمل...",
		"name":             "اسم المستلم",
		"phone":            "رقم الموبايل",
		"addressLine1":     "العنوان",
		"addressLine2":     "المنطقة / الحي",
		"city":             "المحافظة",
		"save":             "حفظ العنوان",
		"saving":           "جاري الحفظ...",
		"cancel":           "الغاء",
		"savedAddresses":   "عناوين محفوظة",
		"useThis":          "استخدام هذا العنوان",
		"newAddress":       "عنوان جديد",
		"autoSaved":        "تم حفظ العنوان في ملفك الشخصي",
	},
	"orderSuccess": {
		"title":            "تم الطلب بنجاح!",
		"subtitle":         "شكراً لك، سيتواصل معك فريقنا قريباً لتأكيد الطلب",
		"delivery":         "التوصيل شامل لباب بيتك",
		"continueShopping": "متابعة التسوق",
		"home":             "الصفحة الرئيسية",
	},
	"errors": {
		"nameRequired":     "يرجى ادخال الاسم",
		"phoneInvalid":     "رقم الموبايل غير صحيح",
		"phoneRequired":    "يرجى ادخال رقم الموبايل",
		"phoneFormat":      "يقبل أرقام 010/011/012/015 فقط",
		"cityRequired":     "يرجى اختيار المحافظة",
		"areaRequired":     "يرجى ادخال المنطقة",
		"addressRequired":  "يرجى ادخال العنوان",
		"cartEmpty":        "السلة فارغة",
		"checkoutFailed":   "حدث خطأ، يرجى المحاولة مجدداً",
		"orderConfirmed":   "تم تأكيد طلبك بنجاح!",
		"emailRequired":    "يرجى ادخال البريد الإلكتروني",
		"emailInvalid":     "صيغة البريد الإلكتروني غير صحيحة",
		"passwordRequired": "يرجى ادخال كلمة المرور",
		"passwordShort":    "كلمة المرور يجب أن تكون 8 أحرف على الأقل",
		"confirmRequired":  "يرجى تأكيد كلمة المرور",
		"passwordMismatch": "كلمتا المرور غير متطابقتين",
		"wrongCredentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"emailTaken":       "البريد الإلكتروني مسجل بالفعل",
		"general":          "حدث خطأ، حاول مرة أخرى",
		"notFound":         "غير موجود",
		"loginRequired":    "يرجى تسجيل الدخول",
		"submitInProgress": "جاري الارسال...",
	},
}

var english = Table{
	"nav": {
		"home":      "Home",
		"catalog":   "Catalog",
		"myAccount": "My Account",
		"login":     "Login",
	},
	"footer": {
		"desc":       "Specialized store for original Mercedes-Benz spare parts in Egypt. Real OEM numbers and competitive prices.",
		"quickLinks": "Quick Links",
		"catalog":    "Catalog",
		"cart":       "Cart",
		"contact":    "Contact Us",
	},
	"card": {
		"addToCart":  "Add to Cart",
		"inStock":    "In Stock",
		"outOfStock": "Out of Stock",
	},
	"catalog": {
		"searchPlaceholder": "Search by name or OEM number...",
		"categories":        "Categories",
		"all":               "All",
		"allParts":          "All Parts",
		"sort":              "Sort",
		"sortName":          "Name",
		"sortPriceAsc":      "Price: Low to High",
		"sortPriceDesc":     "Price: High to Low",
		"sortNewest":        "Newest",
		"searching":         "Searching...",
		"noResults":         "No matching parts found",
		"callForPrice":      "Call for price",
	},
	"cart": {
		"title":              "Your Cart",
		"delivery":           "Price includes door-to-door delivery across all Egypt",
		"empty":              "Your cart is empty",
		"emptyDesc":          "You haven't added any parts yet",
		"browse":             "Browse Parts",
		"remove":             "Remove",
		"qty":                "Qty:",
		"summary":            "Order Summary",
		"partsCount":         "Parts count",
		"shipping":           "Shipping",
		"shippingFree":       "Free",
		"total":              "Total",
		"shippingForm":       "Delivery Details",
		"fullName":           "Full Name *",
		"phone":              "Mobile Number *",
		"phoneHint":          "Accepts 010 / 011 / 012 / 015",
		"governorate":        "Governorate *",
		"govPlaceholder":     "Select governorate",
		"area":               "Area / District *",
		"areaPlaceholder":    "Nasr City, Zagazig...",
		"address":            "Full Address *",
		"addressPlaceholder": "Street, building, apartment",
		"notes":              "Notes (optional)",
		"notesPlaceholder":   "Any instructions for the courier...",
		"submit":             "Confirm Order",
		"submitting":         "Sending...",
	},
	"auth": {
		"loginTitle":         "Sign In",
		"loginSubtitle":      "Welcome back, enter your details to continue",
		"signupTitle":        "Create Account",
		"signupSubtitle":     "Register now and track your orders",
		"email":              "Email Address",
		"password":           "Password",
		"passwordHint":       "At least 8 characters",
		"confirmPassword":    "Confirm Password",
		"confirmPlaceholder": "Re-enter your password",
		"fullName":           "Full Name",
		"phone":              "Mobile Number",
		"phoneHint":          "010 / 011 / 012 / 015",
		"loginBtn":           "Sign In",
		"loggingIn":          "Signing in...",
		"signupBtn":          "Create Account",
		"signingUp":          "Creating...",
		"noAccount":          "Don't have an account?",
		"createAccount":      "Create a new account",
		"haveAccount":        "Already have an account?",
		"loginLink":          "Sign In",
		"welcome":            "Welcome back!",
		"accountCreated":     "Account created successfully!",
	},
	"profile": {
		"orders":        "My Orders",
		"settings":      "Settings",
		"logout":        "Logout",
		"noOrders":      "No orders yet",
		"noOrdersDesc":  "Start browsing spare parts",
		"browseCatalog": "Browse Catalog",
		"editProfile":   "Edit Profile",
		"fullName":      "Full Name",
		"emailReadonly": "Email address cannot be changed",
		"phone":         "Mobile Number",
		"save":          "Save Changes",
		"saving":        "Saving...",
		"logoutSection": "Sign Out",
		"logoutDesc":    "Your session data will be cleared from this device",
	},
	"addToCart": {
		"qty":         "Qty:",
		"add":         "Add to Cart",
		"unavailable": "Unavailable",
		"whatsapp":    "Contact via WhatsApp",
	},
	"car": {
		"title":       "Search by Your Car",
		"subtitle":    "Select your vehicle model to find compatible parts",
		"brand":       "Brand",
		"model":       "Model",
		"year":        "Year",
		"selectBrand": "Select brand",
		"selectModel": "Select model",
		"selectYear":  "Select year",
		"search":      "Search Parts",
	},
	"addresses": {
		"tab":              "My Addresses",
		"noAddresses":      "No saved addresses",
		"noAddressesDesc":  "Your address will be saved automatically when you place an order",
		"addNew":           "Add New Address",
		"defaultBadge":     "Default",
		"setDefault":       "Set as Default",
		"delete":           "Delete",
		"label":            "Address Label",
		"labelPlaceholder": "Home, Work...",
		"name":             "Recipient Name",
		"phone":            "Mobile Number",
		"addressLine1":     "Address",
		"addressLine2":     "Area / District",
		"city":             "Governorate",
		"save":             "Save Address",
		"saving":           "Saving...",
		"cancel":           "Cancel",
		"savedAddresses":   "Saved Addresses",
		"useThis":          "Use This Address",
		"newAddress":       "New Address",
		"autoSaved":        "Address saved to your profile",
	},
	"orderSuccess": {
		"title":            "Order Placed Successfully!",
		"subtitle":         "Thank you! Our team will contact you soon to confirm your order.",
		"delivery":         "Free delivery to your door",
		"continueShopping": "Continue Shopping",
		"home":             "Home Page",
	},
	"errors": {
		"nameRequired":     "Name is required",
		"phoneInvalid":     "Invalid mobile number",
		"phoneRequired":    "Mobile number is required",
		"phoneFormat":      "Must be a valid Egyptian number (010/011/012/015)",
		"cityRequired":     "Please select a governorate",
		"areaRequired":     "Area is required",
		"addressRequired":  "Address is required",
		"cartEmpty":        "Your cart is empty",
		"checkoutFailed":   "Something went wrong, please try again",
		"orderConfirmed":   "Your order has been confirmed!",
		"emailRequired":    "Email is required",
		"emailInvalid":     "Invalid email address",
		"passwordRequired": "Password is required",
		"passwordShort":    "Password must be at least 8 characters",
		"confirmRequired":  "Please confirm your password",
		"passwordMismatch": "Passwords do not match",
		"wrongCredentials": "Incorrect email or password",
		"emailTaken":       "This email is already registered",
		"general":          "Something went wrong, please try again",
		"notFound":         "Not found",
		"loginRequired":    "Please sign in",
		"submitInProgress": "Sending...",
	},
}
