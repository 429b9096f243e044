package i18n

var thai = map[string]string{
	// header
	"header.title":       "ระบบบริการประชาชน",
	"header.subtitle":    "AI Government Services Recommendation",
	"header.home":        "หน้าหลัก",
	"header.aiAssistant": "ผู้ช่วย AI",
	"header.userName":    "นายสมชาย ใจดี",
	"header.userId":      "1-2345-67890-12-3",

	"home.greeting": "สวัสดี %s",
	"home.subtitle": "นี่คือภาพรวมบริการและสถานะเอกสารของคุณ",
	"view.notFound": "ไม่พบหน้าที่คุณต้องการ",

	// stats
	"stats.title":             "สถิติการใช้บริการ",
	"stats.totalRequests":     "คำขอทั้งหมด",
	"stats.pendingDocs":       "เอกสารรอดำเนินการ",
	"stats.completedTasks":    "งานเสร็จสิ้น",
	"stats.activeApps":        "แอปที่ใช้งาน",
	"stats.totalDocs":         "เอกสารทั้งหมด",
	"stats.totalDocs.desc":    "เอกสารในระบบ",
	"stats.actionNeeded":      "ต้องดำเนินการ",
	"stats.actionNeeded.desc": "เอกสารกำลังหมดอายุ",
	"stats.validDocs":         "ใช้งานได้",
	"stats.validDocs.desc":    "เอกสารยังไม่หมดอายุ",
	"stats.expiredDocs":       "หมดอายุแล้ว",
	"stats.expiredDocs.desc":  "ต้องต่ออายุด่วน",

	// documents
	"docs.title":           "สถานะเอกสารสำคัญ",
	"docs.driverLicense":   "ใบขับขี่",
	"docs.idCard":          "บัตรประจำตัวประชาชน",
	"docs.passport":        "หนังสือเดินทาง",
	"docs.workPermit":      "ใบอนุญาตทำงาน",
	"docs.expiresIn":       "หมดอายุใน",
	"docs.days":            "วัน",
	"docs.valid":           "ใช้งานได้",
	"docs.years":           "ปี",
	"docs.viewDetails":     "ดูรายละเอียด",
	"docs.renew":           "ต่ออายุ",
	"docs.status.expired":  "หมดอายุแล้ว",
	"docs.status.expiring": "หมดอายุใน %d วัน",
	"docs.status.valid":    "ใช้ได้อีก %d วัน",
	"docs.status.unknown":  "ไม่ทราบสถานะ",

	// recommendations
	"ai.title":                   "สรุปและคำแนะนำ AI",
	"ai.recommendTitle":          "AI แนะนำบริการสำหรับคุณ",
	"ai.recommendSubtitle":       "ระบบวิเคราะห์ข้อมูลของคุณและแนะนำบริการที่ควรใช้ในช่วงนี้",
	"ai.urgentTasks":             "งานเร่งด่วนที่ต้องทำ",
	"ai.driverLicenseExpiring":   "ใบขับขี่ใกล้หมดอายุ (15 วัน)",
	"ai.renewDriverLicense":      "ต่ออายุใบขับขี่ผ่านแอป DLT Smart Queue หรือ QueQ",
	"ai.idCardExpiring":          "บัตรประชาชนใกล้หมดอายุ (45 วัน)",
	"ai.renewIdCard":             "จองคิวต่ออายุบัตรประชาชนผ่านแอป MOI Service",
	"ai.healthCheckup":           "ตรวจสุขภาพประจำปี",
	"ai.bookHealthCheckup":       "จองตรวจสุขภาพผ่านแอป SSO Connect (มีสิทธิ์ฟรี)",
	"ai.recommendedApps":         "แอปที่แนะนำ",
	"ai.dltSmartQueue":           "DLT Smart Queue - ต่ออายุใบขับขี่",
	"ai.queq":                    "QueQ - จองคิวบริการรัฐ",
	"ai.moiService":              "MOI Service - บริการกระทรวงมหาดไทย",
	"ai.ssoConnect":              "SSO Connect - ประกันสังคม",
	"rec.driverLicense.title":    "ต่ออายุใบขับขี่",
	"rec.driverLicense.desc":     "ใบขับขี่ของคุณจะหมดอายุใน 15 วัน แนะนำให้ดำเนินการต่ออายุล่วงหน้า",
	"rec.driverLicense.location": "สำนักงานขนส่งจังหวัด",
	"rec.driverLicense.category": "การขนส่ง",
	"rec.idCard.title":           "ต่ออายุบัตรประจำตัวประชาชน",
	"rec.idCard.desc":            "บัตรประจำตัวประชาชนจะหมดอายุใน 45 วัน สามารถจองคิวออนไลน์ได้",
	"rec.idCard.location":        "สำนักงานเขต/อำเภอ",
	"rec.idCard.category":        "ทะเบียนราษฎร์",
	"rec.healthCheckup.title":    "ตรวจสุขภาพประจำปี",
	"rec.healthCheckup.desc":     "ถึงเวลาตรวจสุขภาพประจำปีแล้ว สิทธิ์ประกันสังคมของคุณครอบคลุม",
	"rec.healthCheckup.location": "โรงพยาบาลในเครือข่าย",
	"rec.healthCheckup.category": "สาธารณสุข",
	"rec.priority.high":          "เร่งด่วน",
	"rec.priority.medium":        "ควรดำเนินการ",
	"rec.priority.low":           "แนะนำ",
	"rec.priority.unknown":       "ทั่วไป",

	// notifications
	"notif.title":                "การแจ้งเตือน",
	"notif.markAll":              "อ่านทั้งหมด",
	"notif.category.success":     "สำเร็จ",
	"notif.category.warning":     "ต้องดำเนินการ",
	"notif.category.info":        "ข้อมูล",
	"notif.approved.title":       "เอกสารได้รับการอนุมัติ",
	"notif.approved.message":     "เอกสารขอใบอนุญาตของคุณได้รับการอนุมัติเรียบร้อยแล้ว",
	"notif.approved.details":     "ใบอนุญาตประกอบธุรกิจอาหารของคุณได้รับการอนุมัติเรียบร้อยแล้ว เลขที่อนุมัติ: LA-2024-001234 สามารถดาวน์โหลดใบอนุญาตได้ที่เมนูเอกสารของฉัน",
	"notif.approved.time":        "2 ชั่วโมงที่แล้ว",
	"notif.docsRequired.title":   "ต้องเอกสารเพิ่มเติม",
	"notif.docsRequired.message": "กรุณาส่งเอกสารเพิ่มเติมสำหรับการขอใบอนุญาต",
	"notif.docsRequired.details": "การขอใบอนุญาตก่อสร้างต้องการเอกสารเพิ่มเติม: 1. ใบรับรองการออกแบบโดยสถาปนิก 2. แผนผังที่ดิน 3. หนังสือยินยอมจากเพื่อนบ้าน กรุณาส่งเอกสารภายใน 7 วัน",
	"notif.docsRequired.time":    "1 วันที่แล้ว",
	"notif.maintenance.title":    "ระบบปรับปรุงเสร็จสิ้น",
	"notif.maintenance.message":  "ระบบได้รับการปรับปรุงและพร้อมใช้งานแล้ว",
	"notif.maintenance.details":  "ระบบ GovBotAI ได้รับการปรับปรุงเพิ่มฟีเจอร์ใหม่: การแจ้งเตือนแบบเรียลไทม์, ระบบจองคิวออนไลน์, และการติดตามสถานะเอกสารแบบละเอียด ระบบพร้อมให้บริการแล้ว",
	"notif.maintenance.time":     "3 วันที่แล้ว",

	// chat
	"chat.title":                "ผู้ช่วย AI บริการประชาชน",
	"chat.subtitle":             "พร้อมช่วยเหลือและแนะนำบริการภาครัฐ 24/7",
	"chat.online":               "ออนไลน์",
	"chat.inputPlaceholder":     "พิมพ์คำถามของคุณ...",
	"chat.popularQuestions":     "คำถามยอดนิยม",
	"chat.faq":                  "คำถามที่ถามบ่อย:",
	"chat.greeting":             "สวัสดีครับ คุณสมชาย! ผมเป็นผู้ช่วย AI ของระบบบริการประชาชน ผมสามารถช่วยแนะนำบริการต่างๆ ตอบคำถาม และให้คำปรึกษาเกี่ยวกับการใช้บริการภาครัฐได้ครับ มีอะไรให้ช่วยไหมครับ?",
	"chat.reply.driverLicense":  "สำหรับการต่ออายุใบขับขี่ คุณสามารถ:\n\n1. จองคิวออนไลน์ผ่านแอป DLT Smart Queue\n2. เตรียมเอกสาร: ใบขับขี่เดิม, บัตรประชาชน, ใบรับรองแพทย์\n3. ชำระค่าธรรมเนียม 605 บาท\n4. ไปรับใบขับขี่ใหม่ตามคิวที่จอง\n\nแนะนำให้ทำก่อนหมดอายุ 30-60 วันครับ",
	"chat.reply.idCard":         "การต่ออายุบัตรประชาชน:\n\n1. จองคิวผ่านแอป MOI Service\n2. เตรียมเอกสาร: บัตรประชาชนเดิม, ทะเบียนบ้าน\n3. ค่าธรรมเนียม 60 บาท\n4. ใช้เวลาทำการประมาณ 15-30 นาที\n\nสามารถทำได้ที่สำนักงานเขตหรืออำเภอครับ",
	"chat.reply.socialSecurity": "ตรวจสอบสิทธิ์ประกันสังคม:\n\n1. ใช้แอป SSO Connect\n2. เข้าสู่ระบบด้วยบัตรประชาชน\n3. ดูประวัติการจ่ายเงิน สิทธิ์การรักษา\n4. จองตรวจสุขภาพประจำปี\n\nหากมีปัญหา สามารถติดต่อสำนักงานประกันสังคมได้ครับ",
	"chat.default.intro":        "สวัสดีครับ! ผมเป็นผู้ช่วย AI ของระบบบริการประชาชน ผมสามารถช่วยแนะนำบริการภาครัฐ ตรวจสอบสถานะเอกสาร และตอบคำถามต่างๆ ได้ครับ",
	"chat.default.license":      "จากข้อมูลของคุณ ผมเห็นว่าใบขับขี่จะหมดอายุใน 15 วัน คุณสามารถต่ออายุผ่านแอป DLT Smart Queue หรือ QueQ ได้เลยครับ",
	"chat.default.idCard":       "สำหรับการต่ออายุบัตรประชาชน คุณสามารถจองคิวล่วงหน้าผ่านแอป MOI Service ได้ครับ และอย่าลืมเตรียมเอกสารที่จำเป็นด้วยนะครับ",
	"chat.default.sso":          "คุณสามารถตรวจสอบสิทธิ์ประกันสังคมและจองตรวจสุขภาพประจำปีผ่านแอป SSO Connect ได้ครับ",
	"chat.error.empty":          "กรุณาพิมพ์ข้อความก่อนส่ง",
	"chat.error.busy":           "ผู้ช่วยกำลังพิมพ์คำตอบ กรุณารอสักครู่",

	// quick suggestions
	"suggestion.driverLicenseExpiry": "ใบขับขี่กำลังจะหมดอายุ ต้องทำอย่างไร?",
	"suggestion.renewIdCard":         "วิธีต่ออายุบัตรประชาชน",
	"suggestion.socialSecurity":      "ตรวจสอบสิทธิ์ประกันสังคม",
	"suggestion.bookQueue":           "จองคิวบริการภาครัฐออนไลน์",
	"suggestion.documents":           "เอกสารที่ต้องเตรียมสำหรับต่ออายุ",
	"suggestion.govApps":             "แอปของภาครัฐที่น่าใช้",

	// registration
	"register.title":                   "ลงทะเบียนผู้ใช้",
	"register.subtitle":                "กรอกข้อมูลส่วนตัวเพื่อใช้บริการ",
	"register.success.title":           "สำเร็จ",
	"register.success":                 "ลงทะเบียนข้อมูลเรียบร้อยแล้ว",
	"register.error.title":             "เกิดข้อผิดพลาด",
	"register.error":                   "ไม่สามารถลงทะเบียนได้ กรุณาลองใหม่อีกครั้ง",
	"register.recommendation.generic":  "ลงทะเบียนเรียบร้อยแล้ว ระบบจะแนะนำบริการที่เหมาะกับคุณในเร็วๆ นี้",
	"register.recommendation.fallback": "คุณ%s อายุ %d ปี แนะนำให้ตรวจสอบวันหมดอายุใบขับขี่และบัตรประชาชน และจองตรวจสุขภาพประจำปีผ่านแอป SSO Connect",

	// validation
	"validation.invalid":              "ข้อมูลไม่ถูกต้อง",
	"validation.fullName":             "กรุณากรอกชื่อนามสกุล",
	"validation.age.required":         "กรุณากรอกอายุ",
	"validation.age":                  "กรุณากรอกอายุที่ถูกต้อง",
	"validation.gender":               "กรุณาเลือกเพศ",
	"validation.maritalStatus":        "กรุณาเลือกสถานะการสมรส",
	"validation.phoneNumber":          "กรุณากรอกเบอร์โทรศัพท์ที่ถูกต้อง",
	"validation.idCard":               "เลขบัตรประชาชนต้องมี 13 หลัก",
	"validation.drivingLicenseExpiry": "กรุณาเลือกวันหมดอายุใบขับขี่",
	"validation.idCardExpiry":         "กรุณาเลือกวันหมดอายุบัตรประชาชน",

	"auth.invalid": "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง",
}

var english = map[string]string{
	"header.title":       "Citizen Services System",
	"header.subtitle":    "AI Government Services Recommendation",
	"header.home":        "Home",
	"header.aiAssistant": "AI Assistant",
	"header.userName":    "Mr. Somchai Jaidee",
	"header.userId":      "1-2345-67890-12-3",

	"home.greeting": "Hello %s",
	"home.subtitle": "Here is an overview of your services and document status",
	"view.notFound": "Page not found",

	"stats.title":             "Service Usage Statistics",
	"stats.totalRequests":     "Total Requests",
	"stats.pendingDocs":       "Pending Documents",
	"stats.completedTasks":    "Completed Tasks",
	"stats.activeApps":        "Active Apps",
	"stats.totalDocs":         "Total Documents",
	"stats.totalDocs.desc":    "Documents on file",
	"stats.actionNeeded":      "Action Needed",
	"stats.actionNeeded.desc": "Documents expiring soon",
	"stats.validDocs":         "Valid",
	"stats.validDocs.desc":    "Documents not yet expired",
	"stats.expiredDocs":       "Expired",
	"stats.expiredDocs.desc":  "Renew urgently",

	"docs.title":           "Important Document Status",
	"docs.driverLicense":   "Driver License",
	"docs.idCard":          "ID Card",
	"docs.passport":        "Passport",
	"docs.workPermit":      "Work Permit",
	"docs.expiresIn":       "Expires in",
	"docs.days":            "days",
	"docs.valid":           "Valid",
	"docs.years":           "years",
	"docs.viewDetails":     "View Details",
	"docs.renew":           "Renew",
	"docs.status.expired":  "Expired",
	"docs.status.expiring": "Expires in %d days",
	"docs.status.valid":    "Valid for %d more days",
	"docs.status.unknown":  "Unknown status",

	"ai.title":                   "AI Summary & Recommendations",
	"ai.recommendTitle":          "AI Service Recommendations for You",
	"ai.recommendSubtitle":       "We analyze your information and recommend services to use now",
	"ai.urgentTasks":             "Urgent Tasks",
	"ai.driverLicenseExpiring":   "Driver License expiring (15 days)",
	"ai.renewDriverLicense":      "Renew driver license via DLT Smart Queue or QueQ app",
	"ai.idCardExpiring":          "ID Card expiring (45 days)",
	"ai.renewIdCard":             "Book ID card renewal via MOI Service app",
	"ai.healthCheckup":           "Annual Health Checkup",
	"ai.bookHealthCheckup":       "Book health checkup via SSO Connect app (Free)",
	"ai.recommendedApps":         "Recommended Apps",
	"ai.dltSmartQueue":           "DLT Smart Queue - Driver License Renewal",
	"ai.queq":                    "QueQ - Government Service Queue",
	"ai.moiService":              "MOI Service - Ministry of Interior",
	"ai.ssoConnect":              "SSO Connect - Social Security",
	"rec.driverLicense.title":    "Renew Driver License",
	"rec.driverLicense.desc":     "Your driver license expires in 15 days. Renew it ahead of time.",
	"rec.driverLicense.location": "Provincial Land Transport Office",
	"rec.driverLicense.category": "Transport",
	"rec.idCard.title":           "Renew ID Card",
	"rec.idCard.desc":            "Your ID card expires in 45 days. You can book a queue online.",
	"rec.idCard.location":        "District Office",
	"rec.idCard.category":        "Civil Registration",
	"rec.healthCheckup.title":    "Annual Health Checkup",
	"rec.healthCheckup.desc":     "It is time for your annual checkup. Your social security covers it.",
	"rec.healthCheckup.location": "Network Hospital",
	"rec.healthCheckup.category": "Public Health",
	"rec.priority.high":          "Urgent",
	"rec.priority.medium":        "Recommended",
	"rec.priority.low":           "Suggested",
	"rec.priority.unknown":       "General",

	"notif.title":                "Notifications",
	"notif.markAll":              "Mark all read",
	"notif.category.success":     "Success",
	"notif.category.warning":     "Action required",
	"notif.category.info":        "Info",
	"notif.approved.title":       "Document Approved",
	"notif.approved.message":     "Your license application has been approved",
	"notif.approved.details":     "Your food business license has been approved. Approval number: LA-2024-001234. Download it from the My Documents menu.",
	"notif.approved.time":        "2 hours ago",
	"notif.docsRequired.title":   "Additional Documents Required",
	"notif.docsRequired.message": "Please submit additional documents for your application",
	"notif.docsRequired.details": "Your construction permit needs more documents: 1. Architect design certificate 2. Land plan 3. Neighbor consent letter. Please submit within 7 days.",
	"notif.docsRequired.time":    "1 day ago",
	"notif.maintenance.title":    "System Maintenance Complete",
	"notif.maintenance.message":  "System has been updated and is now available",
	"notif.maintenance.details":  "GovBotAI has new features: real-time notifications, online queue booking, and detailed document tracking. The system is ready.",
	"notif.maintenance.time":     "3 days ago",

	"chat.title":                "AI Government Services Assistant",
	"chat.subtitle":             "Ready to help and recommend government services 24/7",
	"chat.online":               "Online",
	"chat.inputPlaceholder":     "Type your question...",
	"chat.popularQuestions":     "Popular Questions",
	"chat.faq":                  "Frequently Asked:",
	"chat.greeting":             "Hello Mr. Somchai! I am the AI assistant for the citizen services system. I can help recommend various services, answer questions, and provide advice on using government services. How can I help you?",
	"chat.reply.driverLicense":  "To renew your driver license you can:\n\n1. Book a queue online via the DLT Smart Queue app\n2. Prepare documents: current license, ID card, medical certificate\n3. Pay the 605 baht fee\n4. Collect the new license at your booked slot\n\nWe recommend renewing 30-60 days before expiry.",
	"chat.reply.idCard":         "Renewing your ID card:\n\n1. Book a queue via the MOI Service app\n2. Prepare documents: current ID card, house registration\n3. Fee: 60 baht\n4. Processing takes about 15-30 minutes\n\nYou can do this at any district office.",
	"chat.reply.socialSecurity": "Checking social security benefits:\n\n1. Use the SSO Connect app\n2. Sign in with your ID card\n3. Review payment history and medical coverage\n4. Book your annual health checkup\n\nContact the Social Security Office if you run into problems.",
	"chat.default.intro":        "Hello! I am the citizen services AI assistant. I can recommend government services, check document status, and answer your questions.",
	"chat.default.license":      "Based on your information, your driver license expires in 15 days. You can renew it via the DLT Smart Queue or QueQ app.",
	"chat.default.idCard":       "To renew your ID card you can book a queue in advance via the MOI Service app. Remember to bring the required documents.",
	"chat.default.sso":          "You can check social security benefits and book an annual health checkup via the SSO Connect app.",
	"chat.error.empty":          "Please type a message before sending",
	"chat.error.busy":           "The assistant is still typing, please wait",

	"suggestion.driverLicenseExpiry": "Driver license expiring, what should I do?",
	"suggestion.renewIdCard":         "How to renew ID card",
	"suggestion.socialSecurity":      "Check social security benefits",
	"suggestion.bookQueue":           "Book government service queue online",
	"suggestion.documents":           "Documents needed for renewal",
	"suggestion.govApps":             "Useful government apps",

	"register.title":                   "User Registration",
	"register.subtitle":                "Enter your personal information to use the services",
	"register.success.title":           "Success",
	"register.success":                 "Registration completed",
	"register.error.title":             "Error",
	"register.error":                   "Registration failed, please try again",
	"register.recommendation.generic":  "You are registered. We will recommend services for you shortly.",
	"register.recommendation.fallback": "%s, age %d: check your driver license and ID card expiry dates and book an annual health checkup via the SSO Connect app.",

	"validation.invalid":              "Invalid value",
	"validation.fullName":             "Please enter your full name",
	"validation.age.required":         "Please enter your age",
	"validation.age":                  "Please enter a valid age",
	"validation.gender":               "Please select a gender",
	"validation.maritalStatus":        "Please select a marital status",
	"validation.phoneNumber":          "Please enter a valid phone number",
	"validation.idCard":               "ID card number must have 13 digits",
	"validation.drivingLicenseExpiry": "Please select the driver license expiry date",
	"validation.idCardExpiry":         "Please select the ID card expiry date",

	"auth.invalid": "Invalid username or password",
}
